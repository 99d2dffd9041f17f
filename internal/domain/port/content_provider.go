package port

import "github.com/HardRise/KindHands-Bot/internal/domain/entity"

// ContentProvider источник справочных текстов о приютах
type ContentProvider interface {
	// Get возвращает текст по виду приюта и теме
	Get(shelter entity.ShelterKind, topic entity.ContentTopic) string
}
