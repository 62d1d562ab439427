// Package redis реализует хранилище счетчиков поверх Redis.
// Ключ счетчика - ключ Redis без префикса, значение - целое число.
package redis

import (
	"context"
	"errors"
	"fmt"

	"playground-service/internal/repository"

	goredis "github.com/redis/go-redis/v9"
)

// scanCount подсказка Redis о размере страницы SCAN
const scanCount = 100

var _ repository.IncrementRepository = (*IncrementRepository)(nil)

// IncrementRepository хранилище счетчиков в Redis
type IncrementRepository struct {
	client *goredis.Client
}

// NewIncrementRepository создает репозиторий поверх готового клиента
func NewIncrementRepository(client *goredis.Client) *IncrementRepository {
	return &IncrementRepository{client: client}
}

// Connect создает клиента Redis и проверяет соединение
func Connect(ctx context.Context, addr, password string, db int) (*IncrementRepository, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewIncrementRepository(client), nil
}

// Get возвращает значение счетчика, 0 если ключа нет
func (r *IncrementRepository) Get(ctx context.Context, key string) (int64, error) {
	value, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis GET %s: %w", key, err)
	}
	return value, nil
}

// Set перезаписывает значение без TTL
func (r *IncrementRepository) Set(ctx context.Context, key string, value int64) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

// Increment атомарно увеличивает значение (INCRBY создает ключ со значением 0)
func (r *IncrementRepository) Increment(ctx context.Context, key string, delta int64) error {
	if err := r.client.IncrBy(ctx, key, delta).Err(); err != nil {
		return fmt.Errorf("redis INCRBY %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключ
func (r *IncrementRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis DEL %s: %w", key, err)
	}
	return nil
}

// Keys обходит пространство ключей через SCAN.
// Результат - неатомарный снимок: параллельные записи могут попасть или не попасть в него.
func (r *IncrementRepository) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	seen := make(map[string]struct{})

	iter := r.client.Scan(ctx, 0, "*", scanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		// SCAN может вернуть один ключ несколько раз
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis SCAN: %w", err)
	}

	return keys, nil
}

// Ping проверяет доступность Redis
func (r *IncrementRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close закрывает пул соединений
func (r *IncrementRepository) Close(ctx context.Context) error {
	return r.client.Close()
}
