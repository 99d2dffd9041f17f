package app

import "github.com/HardRise/KindHands-Bot/internal/domain/entity"

// Тексты ответов бота. Перенесены из текстов приюта "В добрые руки".
const (
	msgGreeting = "Здравствуйте, %s! Я бот приюта для животных \"В добрые руки\"."
	msgBlocked  = "%s, ваш аккаунт заблокирован"
	msgDefault  = "Не корректно введено сообщение."

	msgChooseShelter = "Выберите приют:"
	msgDogMenu       = "Приют для собак. Выберите действие:"
	msgCatMenu       = "Приют для кошек. Выберите действие:"

	msgSendReportPhoto = "Пришлите фотографию питомца:"
	msgDescribeReport  = "Опишите:" +
		"\nРацион животного;" +
		"\nОбщее самочувствие и привыкание к новому месту;" +
		"\nИзменение в поведении: отказ от старых привычек, приобретение новых."
	msgReportSent = "Отчет отправлен."

	msgHelpRequested = "Мы отправили Ваш запрос волонтеру. С Вами свяжутся."
)

// newMessage собирает директиву на отправку нового сообщения
func newMessage(chatID int64, text string) entity.Directive {
	return entity.Directive{
		Kind:   entity.DirectiveNew,
		ChatID: chatID,
		Text:   text,
	}
}

// newMenuMessage собирает директиву на отправку сообщения с меню
func newMenuMessage(chatID int64, text string, menu entity.MenuID) entity.Directive {
	d := newMessage(chatID, text)
	d.Menu = menu
	return d
}

// editMessage собирает директиву на изменение сообщения, к которому была привязана кнопка
func editMessage(ev entity.Event, text string) entity.Directive {
	return entity.Directive{
		Kind:      entity.DirectiveEdit,
		ChatID:    ev.ChatID,
		Text:      text,
		MessageID: ev.MessageID,
	}
}

// editMenuMessage собирает директиву на изменение сообщения с заменой меню
func editMenuMessage(ev entity.Event, text string, menu entity.MenuID) entity.Directive {
	d := editMessage(ev, text)
	d.Menu = menu
	return d
}
