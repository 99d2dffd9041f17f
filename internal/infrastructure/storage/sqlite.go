package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	chat_id   INTEGER PRIMARY KEY,
	name      TEXT NOT NULL DEFAULT '',
	blocked   INTEGER NOT NULL DEFAULT 0,
	need_help INTEGER NOT NULL DEFAULT 0,
	state     TEXT NOT NULL DEFAULT 'none'
);

CREATE TABLE IF NOT EXISTS reports (
	chat_id     INTEGER NOT NULL,
	date        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	photo_ref   TEXT NOT NULL DEFAULT '',
	reviewed    INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (chat_id, date)
);

CREATE TABLE IF NOT EXISTS report_photos (
	ref        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	size       INTEGER NOT NULL,
	media_type TEXT NOT NULL DEFAULT '',
	taken      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS volunteers (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL DEFAULT '',
	contact   TEXT NOT NULL DEFAULT '',
	candidate INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStorage хранилище на SQLite: одно соединение на все репозитории
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite открывает базу и создаёт недостающие таблицы
func OpenSQLite(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close закрывает соединение с базой
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Users возвращает репозиторий пользователей
func (s *SQLiteStorage) Users() *SQLiteUserRepository {
	return &SQLiteUserRepository{db: s.db}
}

// Reports возвращает репозиторий отчётов
func (s *SQLiteStorage) Reports() *SQLiteReportRepository {
	return &SQLiteReportRepository{db: s.db}
}

// Photos возвращает хранилище фотографий
func (s *SQLiteStorage) Photos() *SQLitePhotoStore {
	return &SQLitePhotoStore{db: s.db}
}

// Volunteers возвращает репозиторий волонтёров
func (s *SQLiteStorage) Volunteers() *SQLiteVolunteerRepository {
	return &SQLiteVolunteerRepository{db: s.db}
}
