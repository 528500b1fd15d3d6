package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"workoutlog/internal/app/server/config"
)

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite3", cfg.DB.DatabasePath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &Storage{db: db}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			exercise TEXT NOT NULL,
			type TEXT NOT NULL,
			duration REAL NOT NULL DEFAULT 0,
			sets REAL NOT NULL DEFAULT 0,
			reps REAL NOT NULL DEFAULT 0,
			weight REAL NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);
	`)

	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
