package entity

// DirectiveKind вид исходящей директивы
type DirectiveKind string

const (
	DirectiveNew  DirectiveKind = "new"  // Отправить новое сообщение
	DirectiveEdit DirectiveKind = "edit" // Изменить существующее сообщение
)

// MenuID меню, которое транспорт должен прикрепить к сообщению.
// Движок решает, какое меню показать; раскладка кнопок остаётся за транспортом.
type MenuID string

const (
	MenuNone     MenuID = ""
	MenuShelters MenuID = "shelters"    // Выбор приюта
	MenuDog      MenuID = "dog_shelter" // Меню собачьего приюта
	MenuCat      MenuID = "cat_shelter" // Меню кошачьего приюта
)

// Directive указание транспорту отправить или изменить сообщение
type Directive struct {
	Kind      DirectiveKind
	ChatID    int64
	Text      string
	MessageID int    // Только для DirectiveEdit
	Menu      MenuID // Необязательное меню
}
