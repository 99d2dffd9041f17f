package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// MemoryVolunteerRepository in-memory хранилище волонтёров
type MemoryVolunteerRepository struct {
	mu         sync.RWMutex
	volunteers map[string]*entity.Volunteer
}

// NewMemoryVolunteerRepository создаёт новое in-memory хранилище волонтёров
func NewMemoryVolunteerRepository() *MemoryVolunteerRepository {
	return &MemoryVolunteerRepository{
		volunteers: make(map[string]*entity.Volunteer),
	}
}

// List возвращает волонтёров либо кандидатов
func (r *MemoryVolunteerRepository) List(ctx context.Context, candidates bool) ([]*entity.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Volunteer
	for _, v := range r.volunteers {
		if v.Candidate == candidates {
			out = append(out, v)
		}
	}
	return out, nil
}

// Save сохраняет волонтёра, присваивая идентификатор новому
func (r *MemoryVolunteerRepository) Save(ctx context.Context, volunteer *entity.Volunteer) error {
	if volunteer.ID == "" {
		volunteer.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.volunteers[volunteer.ID] = volunteer
	r.mu.Unlock()

	return nil
}

// Delete удаляет волонтёра по идентификатору
func (r *MemoryVolunteerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.volunteers, id)
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.VolunteerRepository = (*MemoryVolunteerRepository)(nil)
