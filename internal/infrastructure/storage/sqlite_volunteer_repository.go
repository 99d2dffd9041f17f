package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// SQLiteVolunteerRepository хранилище волонтёров на SQLite
type SQLiteVolunteerRepository struct {
	db *sql.DB
}

// List возвращает волонтёров либо кандидатов
func (r *SQLiteVolunteerRepository) List(ctx context.Context, candidates bool) ([]*entity.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, contact, candidate FROM volunteers WHERE candidate = ?`, candidates)
	if err != nil {
		return nil, fmt.Errorf("select volunteers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Volunteer
	for rows.Next() {
		var v entity.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Contact, &v.Candidate); err != nil {
			return nil, fmt.Errorf("scan volunteer: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Save сохраняет волонтёра, присваивая идентификатор новому
func (r *SQLiteVolunteerRepository) Save(ctx context.Context, volunteer *entity.Volunteer) error {
	if volunteer.ID == "" {
		volunteer.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO volunteers (id, name, contact, candidate)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			contact = excluded.contact,
			candidate = excluded.candidate`,
		volunteer.ID, volunteer.Name, volunteer.Contact, volunteer.Candidate)
	if err != nil {
		return fmt.Errorf("upsert volunteer: %w", err)
	}
	return nil
}

// Delete удаляет волонтёра по идентификатору
func (r *SQLiteVolunteerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM volunteers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.VolunteerRepository = (*SQLiteVolunteerRepository)(nil)
