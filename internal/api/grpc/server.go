package grpc

import (
	"log/slog"
	"time"

	"playground-service/internal/api/grpc/interceptors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// NewServer создает gRPC сервер, обслуживающий стандартный Health сервис.
func NewServer(healthServer *health.Server, useReflection bool) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.MaxConcurrentStreams(25),
		// KeepAlive параметры для защиты от зависших соединений
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Minute,
			MaxConnectionAge:      1 * time.Hour,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  10 * time.Minute,
			Timeout:               20 * time.Second,
		}),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggerUnaryInterceptor,
		),
	)

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	slog.Info("registered grpc.health.v1.Health")

	// Настройка reflection (для grpcurl/grpcui)
	if useReflection {
		reflection.Register(grpcServer)
		slog.Info("enabled gRPC reflection")
	}

	return grpcServer
}
