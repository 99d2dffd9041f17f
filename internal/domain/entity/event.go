package entity

import "time"

// EventKind вид входящего события
type EventKind string

const (
	EventMessage  EventKind = "message"  // Текст или фото от пользователя
	EventCallback EventKind = "callback" // Нажатие кнопки
)

// PhotoInput фотография из входящего сообщения
type PhotoInput struct {
	Data      []byte
	MediaType string
	Taken     time.Time
}

// Event входящее событие в обобщённом виде, без деталей транспорта
type Event struct {
	Kind          EventKind
	ChatID        int64
	SenderName    string
	Text          string
	Photo         *PhotoInput
	CallbackToken string
	MessageID     int // Сообщение, к которому привязана нажатая кнопка
}
