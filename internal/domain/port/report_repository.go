package port

import (
	"context"
	"time"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

// ReportRepository интерфейс хранилища отчётов.
// Отчёт ищется по паре (chatID, календарный день); (nil, nil) — отчёта нет.
type ReportRepository interface {
	// Get возвращает отчёт пользователя за день
	Get(ctx context.Context, chatID int64, date time.Time) (*entity.Report, error)

	// Save сохраняет отчёт
	Save(ctx context.Context, report *entity.Report) error

	// ListUnreviewed возвращает заполненные, но не проверенные отчёты
	ListUnreviewed(ctx context.Context) ([]*entity.Report, error)
}
