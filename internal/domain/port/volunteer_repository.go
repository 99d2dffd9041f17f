package port

import (
	"context"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

// VolunteerRepository интерфейс хранилища волонтёров
type VolunteerRepository interface {
	// List возвращает волонтёров либо кандидатов в волонтёры
	List(ctx context.Context, candidates bool) ([]*entity.Volunteer, error)

	// Save сохраняет волонтёра, присваивая идентификатор при необходимости
	Save(ctx context.Context, volunteer *entity.Volunteer) error

	// Delete удаляет волонтёра по идентификатору
	Delete(ctx context.Context, id string) error
}
