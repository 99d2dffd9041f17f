package entity

// Volunteer волонтёр приюта либо кандидат в волонтёры
type Volunteer struct {
	ID        string `json:"id"`        // UUID, присваивается хранилищем
	Name      string `json:"name"`      // Имя волонтёра
	Contact   string `json:"contact"`   // Телефон или username для связи
	Candidate bool   `json:"candidate"` // Заявка ещё не рассмотрена
}
