package entity

import "time"

// ReportPhoto фотография, приложенная к отчёту о питомце.
// Ref присваивается хранилищем при сохранении.
type ReportPhoto struct {
	Ref       string
	Data      []byte
	Size      int64
	MediaType string
	Taken     time.Time
}
