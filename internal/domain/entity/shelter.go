package entity

// ShelterKind вид приюта
type ShelterKind string

const (
	ShelterDog ShelterKind = "dog"
	ShelterCat ShelterKind = "cat"
)

// ContentTopic тема справочной информации о приюте
type ContentTopic string

const (
	TopicAbout    ContentTopic = "about"    // Описание приюта: адрес, расписание
	TopicAdoption ContentTopic = "adoption" // Как взять питомца: документы, правила
)
