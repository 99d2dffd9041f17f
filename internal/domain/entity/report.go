package entity

import "time"

// Report ежедневный отчёт пользователя о взятом питомце.
// На одного пользователя за один календарный день существует не более одного отчёта.
type Report struct {
	ChatID      int64     `json:"chat_id"`     // Telegram Chat ID автора
	Date        time.Time `json:"date"`        // День, за который составлен отчёт
	Description string    `json:"description"` // Рацион, самочувствие, поведение
	PhotoRef    string    `json:"photo_ref"`   // Идентификатор фотографии в хранилище
	Reviewed    bool      `json:"reviewed"`    // Отчёт проверен волонтёром
}

// NewReport создаёт пустой отчёт за указанный день
func NewReport(chatID int64, date time.Time) *Report {
	return &Report{
		ChatID: chatID,
		Date:   DayOf(date),
	}
}

// Complete сообщает, заполнено ли описание отчёта
func (r *Report) Complete() bool {
	return r.Description != ""
}

// DayOf усекает время до календарного дня
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
