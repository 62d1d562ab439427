// Package gateway собирает HTTP фронт сервиса: REST ресурсы, /healthz через
// grpc-gateway поверх gRPC Health сервиса, OpenAPI документ и цепочку middleware.
package gateway

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"playground-service/internal/api/http/middleware"
	"playground-service/internal/api/swagger"
	"playground-service/internal/config"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Пути, доступные без токена
var publicPaths = []string{"/healthz", "/swagger.json"}

// Options параметры сборки Gateway
type Options struct {
	// GRPCAddr адрес gRPC сервера с Health сервисом (например, "localhost:50051")
	GRPCAddr  string
	Config    *config.ConfigGateway
	AuthToken string
	Swagger   bool
}

// Gateway HTTP обработчик сервиса
type Gateway struct {
	handler http.Handler
	conn    *grpc.ClientConn
}

// New создает Gateway. api обслуживает все пути, кроме /healthz и /swagger.json.
func New(opts Options, api http.Handler) (*Gateway, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.ConfigGateway{}
	}

	conn, err := grpc.NewClient(opts.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc.NewClient(%s): %w", opts.GRPCAddr, err)
	}

	// GET /healthz?service=<name> проксируется в grpc.health.v1.Health/Check
	gwMux := runtime.NewServeMux(
		runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
	)

	mux := http.NewServeMux()
	mux.Handle("/healthz", gwMux)
	if opts.Swagger {
		swagger.ServeSwagger(mux)
	}
	mux.Handle("/", api)

	// Применение middleware (в обратном порядке выполнения):
	// 1. CORS (самый внешний слой, отвечает на preflight)
	// 2. RequestID (идентификатор нужен логированию)
	// 3. Logging (логирует все запросы, включая отклоненные)
	// 4. Auth (проверка Bearer токена)
	// 5. Rate Limiting (ограничивает количество запросов)
	var handler http.Handler = mux
	handler = middleware.RateLimit(handler, cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler = middleware.Auth(handler, opts.AuthToken, publicPaths...)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = setupCORS(cfg).Handler(handler)

	slog.Info("HTTP gateway configured",
		"grpc_addr", opts.GRPCAddr,
		"cors_origins", cfg.CORSAllowedOrigins,
		"auth", opts.AuthToken != "",
	)

	return &Gateway{handler: handler, conn: conn}, nil
}

// ServeHTTP делает Gateway http.Handler
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.handler.ServeHTTP(w, r)
}

// Close закрывает соединение с gRPC сервером
func (g *Gateway) Close() error {
	return g.conn.Close()
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigGateway) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
			middleware.RequestIDHeader,
		},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}
