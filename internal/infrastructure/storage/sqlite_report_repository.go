package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

const dayFormat = "2006-01-02"

// SQLiteReportRepository хранилище отчётов на SQLite.
// День отчёта хранится строкой формата 2006-01-02.
type SQLiteReportRepository struct {
	db *sql.DB
}

// Get возвращает отчёт пользователя за день, nil если не найден
func (r *SQLiteReportRepository) Get(ctx context.Context, chatID int64, date time.Time) (*entity.Report, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT chat_id, date, description, photo_ref, reviewed FROM reports
		 WHERE chat_id = ? AND date = ?`,
		chatID, entity.DayOf(date).Format(dayFormat))

	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select report: %w", err)
	}
	return report, nil
}

// Save сохраняет отчёт, перезаписывая существующую запись за тот же день
func (r *SQLiteReportRepository) Save(ctx context.Context, report *entity.Report) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (chat_id, date, description, photo_ref, reviewed)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (chat_id, date) DO UPDATE SET
			description = excluded.description,
			photo_ref = excluded.photo_ref,
			reviewed = excluded.reviewed`,
		report.ChatID, entity.DayOf(report.Date).Format(dayFormat),
		report.Description, report.PhotoRef, report.Reviewed)
	if err != nil {
		return fmt.Errorf("upsert report: %w", err)
	}
	return nil
}

// ListUnreviewed возвращает заполненные, но не проверенные отчёты
func (r *SQLiteReportRepository) ListUnreviewed(ctx context.Context) ([]*entity.Report, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT chat_id, date, description, photo_ref, reviewed FROM reports
		 WHERE description != '' AND reviewed = 0`)
	if err != nil {
		return nil, fmt.Errorf("select reports: %w", err)
	}
	defer rows.Close()

	var out []*entity.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

func scanReport(row rowScanner) (*entity.Report, error) {
	var report entity.Report
	var day string

	if err := row.Scan(&report.ChatID, &day, &report.Description, &report.PhotoRef, &report.Reviewed); err != nil {
		return nil, err
	}

	date, err := time.Parse(dayFormat, day)
	if err != nil {
		return nil, fmt.Errorf("parse report date %q: %w", day, err)
	}
	report.Date = date
	return &report, nil
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*SQLiteReportRepository)(nil)
