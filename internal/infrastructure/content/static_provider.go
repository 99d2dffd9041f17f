package content

import (
	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// StaticProvider справочные тексты приютов, зашитые в код
type StaticProvider struct{}

// NewStaticProvider создаёт провайдер справочных текстов
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

var texts = map[entity.ShelterKind]map[entity.ContentTopic]string{
	entity.ShelterDog: {
		entity.TopicAbout: "Информация о собачьем приюте:" +
			"\nПриют \"В добрые руки\" принимает собак с 2015 года." +
			"\nАдрес: г. Астана, ул. Аккорган, 5в." +
			"\nЧасы посещения: ежедневно с 11:00 до 18:00." +
			"\nОхрана на территории круглосуточная, машину можно оставить у ворот.",
		entity.TopicAdoption: "Как взять собаку из приюта:" +
			"\n1. Познакомьтесь с собакой на территории приюта;" +
			"\n2. Возьмите с собой паспорт и заполните заявление;" +
			"\n3. Подготовьте поводок, ошейник и место для собаки дома;" +
			"\n4. В течение месяца присылайте боту ежедневный отчёт о питомце.",
	},
	entity.ShelterCat: {
		entity.TopicAbout: "Информация о кошачьем приюте:" +
			"\nПриют \"В добрые руки\" принимает кошек с 2015 года." +
			"\nАдрес: г. Астана, ул. Аккорган, 5в." +
			"\nЧасы посещения: ежедневно с 11:00 до 18:00." +
			"\nПеред посещением наденьте сменную обувь или бахилы.",
		entity.TopicAdoption: "Как взять кошку из приюта:" +
			"\n1. Познакомьтесь с кошкой на территории приюта;" +
			"\n2. Возьмите с собой паспорт и заполните заявление;" +
			"\n3. Подготовьте переноску, лоток и место для кошки дома;" +
			"\n4. В течение месяца присылайте боту ежедневный отчёт о питомце.",
	},
}

// Get возвращает текст по виду приюта и теме
func (p *StaticProvider) Get(shelter entity.ShelterKind, topic entity.ContentTopic) string {
	return texts[shelter][topic]
}

// Проверка реализации интерфейса
var _ port.ContentProvider = (*StaticProvider)(nil)
