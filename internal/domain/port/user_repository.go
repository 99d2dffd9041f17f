package port

import (
	"context"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей.
// Get возвращает (nil, nil), если пользователь не найден;
// ошибка всегда означает сбой хранилища.
type UserRepository interface {
	// Get возвращает пользователя по chatID
	Get(ctx context.Context, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя
	Save(ctx context.Context, user *entity.User) error

	// ListNeedHelp возвращает пользователей, запросивших помощь волонтёра
	ListNeedHelp(ctx context.Context) ([]*entity.User, error)
}
