package storage

import (
	"context"
	"sync"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает пользователя по chatID, nil если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[chatID]
	if !exists {
		return nil, nil
	}
	return user, nil
}

// Save сохраняет пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	r.users[user.ChatID] = user
	r.mu.Unlock()

	return nil
}

// ListNeedHelp возвращает пользователей, запросивших помощь волонтёра
func (r *MemoryUserRepository) ListNeedHelp(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.User
	for _, user := range r.users {
		if user.NeedHelp {
			out = append(out, user)
		}
	}
	return out, nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
