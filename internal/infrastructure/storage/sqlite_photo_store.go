package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// SQLitePhotoStore хранилище фотографий отчётов на SQLite
type SQLitePhotoStore struct {
	db *sql.DB
}

// Save сохраняет фотографию и возвращает присвоенный идентификатор
func (s *SQLitePhotoStore) Save(ctx context.Context, photo *entity.ReportPhoto) (string, error) {
	photo.Ref = uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO report_photos (ref, data, size, media_type, taken) VALUES (?, ?, ?, ?, ?)`,
		photo.Ref, photo.Data, photo.Size, photo.MediaType, photo.Taken.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert photo: %w", err)
	}
	return photo.Ref, nil
}

// Get возвращает фотографию по идентификатору, nil если не найдена
func (s *SQLitePhotoStore) Get(ctx context.Context, ref string) (*entity.ReportPhoto, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT ref, data, size, media_type, taken FROM report_photos WHERE ref = ?`, ref)

	var photo entity.ReportPhoto
	var taken string

	err := row.Scan(&photo.Ref, &photo.Data, &photo.Size, &photo.MediaType, &taken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select photo: %w", err)
	}

	photo.Taken, err = time.Parse(time.RFC3339, taken)
	if err != nil {
		return nil, fmt.Errorf("parse photo time %q: %w", taken, err)
	}
	return &photo, nil
}

// Проверка реализации интерфейса
var _ port.PhotoStore = (*SQLitePhotoStore)(nil)
