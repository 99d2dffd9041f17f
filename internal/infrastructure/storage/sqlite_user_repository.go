package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// SQLiteUserRepository хранилище пользователей на SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// Get возвращает пользователя по chatID, nil если не найден
func (r *SQLiteUserRepository) Get(ctx context.Context, chatID int64) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT chat_id, name, blocked, need_help, state FROM users WHERE chat_id = ?`, chatID)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

// Save сохраняет пользователя, перезаписывая существующую запись
func (r *SQLiteUserRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (chat_id, name, blocked, need_help, state)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (chat_id) DO UPDATE SET
			name = excluded.name,
			blocked = excluded.blocked,
			need_help = excluded.need_help,
			state = excluded.state`,
		user.ChatID, user.Name, user.Blocked, user.NeedHelp, string(user.State))
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// ListNeedHelp возвращает пользователей, запросивших помощь волонтёра
func (r *SQLiteUserRepository) ListNeedHelp(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT chat_id, name, blocked, need_help, state FROM users WHERE need_help = 1`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, user)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	var state string

	if err := row.Scan(&user.ChatID, &user.Name, &user.Blocked, &user.NeedHelp, &state); err != nil {
		return nil, err
	}
	user.State = entity.UserState(state)
	return &user, nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*SQLiteUserRepository)(nil)
