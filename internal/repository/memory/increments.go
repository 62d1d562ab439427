package memory

import (
	"context"
	"sync"

	"playground-service/internal/repository"
)

var _ repository.IncrementRepository = (*increments)(nil)

type increments struct {
	mu     sync.RWMutex
	values map[string]int64
}

// NewIncrementRepository создает in-memory хранилище счетчиков
func NewIncrementRepository() repository.IncrementRepository {
	return &increments{
		values: make(map[string]int64),
	}
}

func (r *increments) Get(ctx context.Context, key string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.values[key], nil
}

func (r *increments) Set(ctx context.Context, key string, value int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *increments) Increment(ctx context.Context, key string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] += delta
	return nil
}

func (r *increments) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

func (r *increments) Keys(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for key := range r.values {
		keys = append(keys, key)
	}
	return keys, nil
}
