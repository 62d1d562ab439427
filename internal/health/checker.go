// Package health периодически проверяет хранилища и публикует результат
// через стандартный gRPC Health сервис.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger хранилище, умеющее проверить свою доступность
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker связывает имена сервисов с проверками хранилищ.
// Сервис без зарегистрированных проверок всегда SERVING.
// Общий статус (пустое имя сервиса) SERVING только если все проверки прошли.
type Checker struct {
	server   *health.Server
	interval time.Duration
	timeout  time.Duration

	mu       sync.Mutex
	services []string
	checks   map[string][]Pinger
}

// NewChecker создает Checker поверх gRPC health сервера
func NewChecker(server *health.Server, interval time.Duration) *Checker {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &Checker{
		server:   server,
		interval: interval,
		timeout:  interval / 2,
		checks:   make(map[string][]Pinger),
	}
}

// Register объявляет сервис и, опционально, проверку хранилища для него
func (c *Checker) Register(service string, p Pinger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, known := c.checks[service]; !known {
		c.services = append(c.services, service)
		c.checks[service] = nil
	}
	if p != nil {
		c.checks[service] = append(c.checks[service], p)
	}
}

// CheckOnce выполняет все проверки и обновляет статусы
func (c *Checker) CheckOnce(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	overall := healthpb.HealthCheckResponse_SERVING
	for _, service := range c.services {
		status := healthpb.HealthCheckResponse_SERVING
		for _, p := range c.checks[service] {
			pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
			err := p.Ping(pingCtx)
			cancel()
			if err != nil {
				slog.WarnContext(ctx, "store health check failed", "service", service, "error", err)
				status = healthpb.HealthCheckResponse_NOT_SERVING
			}
		}
		if status != healthpb.HealthCheckResponse_SERVING {
			overall = status
		}
		c.server.SetServingStatus(service, status)
	}

	c.server.SetServingStatus("", overall)
}

// Run проверяет хранилища сразу и затем с заданным интервалом до отмены ctx
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.CheckOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.CheckOnce(ctx)
		}
	}
}
