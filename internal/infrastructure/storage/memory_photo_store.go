package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// MemoryPhotoStore in-memory хранилище фотографий отчётов
type MemoryPhotoStore struct {
	mu     sync.RWMutex
	photos map[string]*entity.ReportPhoto
}

// NewMemoryPhotoStore создаёт новое in-memory хранилище фотографий
func NewMemoryPhotoStore() *MemoryPhotoStore {
	return &MemoryPhotoStore{
		photos: make(map[string]*entity.ReportPhoto),
	}
}

// Save сохраняет фотографию и возвращает присвоенный идентификатор
func (s *MemoryPhotoStore) Save(ctx context.Context, photo *entity.ReportPhoto) (string, error) {
	photo.Ref = uuid.NewString()

	s.mu.Lock()
	s.photos[photo.Ref] = photo
	s.mu.Unlock()

	return photo.Ref, nil
}

// Get возвращает фотографию по идентификатору, nil если не найдена
func (s *MemoryPhotoStore) Get(ctx context.Context, ref string) (*entity.ReportPhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photo, exists := s.photos[ref]
	if !exists {
		return nil, nil
	}
	return photo, nil
}

// Проверка реализации интерфейса
var _ port.PhotoStore = (*MemoryPhotoStore)(nil)
