// Package sqlite содержит встроенные реализации поискового индекса (FTS5)
// и хранилища счетчиков поверх SQLite (modernc.org/sqlite, без cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE VIRTUAL TABLE IF NOT EXISTS notes USING fts5(
	id UNINDEXED,
	title,
	content,
	tokenize = 'unicode61'
);

CREATE TABLE IF NOT EXISTS increments (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL DEFAULT 0
);
`

// Store владеет соединением с базой SQLite, общей для индекса и счетчиков
type Store struct {
	db *sql.DB
}

// Open открывает (или создает) базу по указанному пути и применяет схему
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Search возвращает поисковый индекс заметок
func (s *Store) Search() *SearchRepository {
	return &SearchRepository{db: s.db}
}

// Increments возвращает хранилище счетчиков
func (s *Store) Increments() *IncrementRepository {
	return &IncrementRepository{db: s.db}
}

// Ping проверяет доступность базы
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close закрывает базу
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}
