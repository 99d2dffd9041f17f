package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateNone                      UserState = "none"                        // Вне сценария, главное меню
	StateAwaitingReportPhoto       UserState = "awaiting_report_photo"       // Ожидание фотографии питомца
	StateAwaitingReportDescription UserState = "awaiting_report_description" // Ожидание описания для отчёта
)

// User представляет пользователя бота
type User struct {
	ChatID   int64     `json:"chat_id"`   // Telegram Chat ID
	Name     string    `json:"name"`      // Имя из профиля Telegram
	Blocked  bool      `json:"blocked"`   // Пользователь заблокирован
	NeedHelp bool      `json:"need_help"` // Запрошена помощь волонтёра
	State    UserState `json:"state"`     // Текущее состояние диалога
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(chatID int64, name string) *User {
	return &User{
		ChatID: chatID,
		Name:   name,
		State:  StateNone,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}
