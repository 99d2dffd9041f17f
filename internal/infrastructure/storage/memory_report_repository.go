package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// MemoryReportRepository in-memory хранилище отчётов.
// Ключ — пара (chatID, календарный день).
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[string]*entity.Report
}

// NewMemoryReportRepository создаёт новое in-memory хранилище отчётов
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[string]*entity.Report),
	}
}

// Get возвращает отчёт за день, nil если не найден
func (r *MemoryReportRepository) Get(ctx context.Context, chatID int64, date time.Time) (*entity.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[reportKey(chatID, date)]
	if !exists {
		return nil, nil
	}
	return report, nil
}

// Save сохраняет отчёт
func (r *MemoryReportRepository) Save(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	r.reports[reportKey(report.ChatID, report.Date)] = report
	r.mu.Unlock()

	return nil
}

// ListUnreviewed возвращает заполненные, но не проверенные отчёты
func (r *MemoryReportRepository) ListUnreviewed(ctx context.Context) ([]*entity.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Report
	for _, report := range r.reports {
		if report.Complete() && !report.Reviewed {
			out = append(out, report)
		}
	}
	return out, nil
}

// reportKey строит ключ отчёта из chatID и календарного дня
func reportKey(chatID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", chatID, date.Format("2006-01-02"))
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*MemoryReportRepository)(nil)
