package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"playground-service/internal/repository"
)

var _ repository.IncrementRepository = (*IncrementRepository)(nil)

// IncrementRepository счетчики в таблице increments
type IncrementRepository struct {
	db *sql.DB
}

func (r *IncrementRepository) Get(ctx context.Context, key string) (int64, error) {
	var value int64
	err := r.db.QueryRowContext(ctx, `SELECT value FROM increments WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (r *IncrementRepository) Set(ctx context.Context, key string, value int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO increments (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Increment выполняет атомарный UPSERT: отсутствующий ключ создается со значением delta
func (r *IncrementRepository) Increment(ctx context.Context, key string, delta int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO increments (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = value + excluded.value`, key, delta)
	if err != nil {
		return fmt.Errorf("increment %s: %w", key, err)
	}
	return nil
}

func (r *IncrementRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM increments WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *IncrementRepository) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM increments`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
