package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"playground-service/internal/config"
	"playground-service/internal/health"
	"playground-service/internal/repository"
	"playground-service/internal/repository/memory"
	"playground-service/internal/repository/mongodb"
	"playground-service/internal/repository/opensearch"
	"playground-service/internal/repository/redis"
	"playground-service/internal/repository/sqlite"
)

// Имена бэкендов в секции storage
const (
	BackendMemory     = "memory"
	BackendMongo      = "mongo"
	BackendOpenSearch = "opensearch"
	BackendRedis      = "redis"
	BackendSQLite     = "sqlite"
)

// Имена сервисов в gRPC Health
const (
	HealthNotes      = "notes"
	HealthSearch     = "search"
	HealthIncrements = "increments"
)

// stores клиенты хранилищ, создаются один раз на процесс
type stores struct {
	notes      repository.NoteRepository
	search     repository.NoteSearchRepository
	increments repository.IncrementRepository

	pingers map[string]health.Pinger
	closers []func(ctx context.Context) error

	sqlite *sqlite.Store
}

// openStores подключается к хранилищам, выбранным в конфигурации.
// При ошибке уже открытые соединения закрываются.
func openStores(ctx context.Context, cfg *config.ConfigStorage) (_ *stores, err error) {
	if cfg == nil {
		cfg = &config.ConfigStorage{}
	}

	timeout := time.Duration(cfg.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s := &stores{pingers: make(map[string]health.Pinger)}
	defer func() {
		if err != nil {
			s.close(context.Background())
		}
	}()

	if err := s.openNotes(ctx, cfg); err != nil {
		return nil, err
	}
	if err := s.openSearch(ctx, cfg); err != nil {
		return nil, err
	}
	if err := s.openIncrements(ctx, cfg); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *stores) openNotes(ctx context.Context, cfg *config.ConfigStorage) error {
	switch backend(cfg.Notes, BackendMemory) {
	case BackendMemory:
		s.notes = memory.NewRepository()
	case BackendMongo:
		mc := cfg.Mongo
		if mc == nil {
			mc = &config.ConfigMongo{}
		}
		repo, err := mongodb.Connect(ctx, mc.URI, mc.Database)
		if err != nil {
			return fmt.Errorf("connect notes store: %w", err)
		}
		s.notes = repo
		s.pingers[HealthNotes] = repo
		s.closers = append(s.closers, repo.Close)
	default:
		return fmt.Errorf("unknown notes backend %q", cfg.Notes)
	}

	slog.Info("notes store ready", "backend", backend(cfg.Notes, BackendMemory))
	return nil
}

func (s *stores) openSearch(ctx context.Context, cfg *config.ConfigStorage) error {
	switch backend(cfg.Search, BackendSQLite) {
	case BackendSQLite:
		store, err := s.sqliteStore(cfg)
		if err != nil {
			return err
		}
		s.search = store.Search()
		s.pingers[HealthSearch] = store
	case BackendOpenSearch:
		oc := cfg.OpenSearch
		if oc == nil {
			oc = &config.ConfigOpenSearch{}
		}
		repo, err := opensearch.Connect(ctx, splitList(oc.Addresses), oc.Username, oc.Password, oc.Index)
		if err != nil {
			return fmt.Errorf("connect search index: %w", err)
		}
		s.search = repo
		s.pingers[HealthSearch] = repo
	default:
		return fmt.Errorf("unknown search backend %q", cfg.Search)
	}

	slog.Info("search index ready", "backend", backend(cfg.Search, BackendSQLite))
	return nil
}

func (s *stores) openIncrements(ctx context.Context, cfg *config.ConfigStorage) error {
	switch backend(cfg.Increments, BackendMemory) {
	case BackendMemory:
		s.increments = memory.NewIncrementRepository()
	case BackendSQLite:
		store, err := s.sqliteStore(cfg)
		if err != nil {
			return err
		}
		s.increments = store.Increments()
		s.pingers[HealthIncrements] = store
	case BackendRedis:
		rc := cfg.Redis
		if rc == nil {
			rc = &config.ConfigRedis{}
		}
		repo, err := redis.Connect(ctx, rc.Addr, rc.Password, rc.DB)
		if err != nil {
			return fmt.Errorf("connect counter store: %w", err)
		}
		s.increments = repo
		s.pingers[HealthIncrements] = repo
		s.closers = append(s.closers, repo.Close)
	default:
		return fmt.Errorf("unknown increments backend %q", cfg.Increments)
	}

	slog.Info("counter store ready", "backend", backend(cfg.Increments, BackendMemory))
	return nil
}

// sqliteStore открывает общую базу SQLite при первом обращении
func (s *stores) sqliteStore(cfg *config.ConfigStorage) (*sqlite.Store, error) {
	if s.sqlite != nil {
		return s.sqlite, nil
	}

	path := "data/playground.db"
	if cfg.SQLite != nil && cfg.SQLite.Path != "" {
		path = cfg.SQLite.Path
	}

	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s.sqlite = store
	s.closers = append(s.closers, store.Close)
	return store, nil
}

// close закрывает соединения в обратном порядке открытия
func (s *stores) close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func backend(name, fallback string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fallback
	}
	return name
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
