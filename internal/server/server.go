package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"playground-service/internal/api/gateway"
	grpcapi "playground-service/internal/api/grpc"
	"playground-service/internal/api/rest"
	"playground-service/internal/config"
	"playground-service/internal/health"
	notesService "playground-service/internal/service/notes"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
)

// Server представляет сервер приложения: REST + /healthz по HTTP и gRPC Health
type Server struct {
	// HTTP компоненты
	HTTPServer   *http.Server
	HTTPListener net.Listener
	Gateway      *gateway.Gateway

	// gRPC компоненты
	GRPCServer   *grpc.Server
	GRPCListener net.Listener
	HealthServer *grpchealth.Server
	Checker      *health.Checker

	// Контекст фоновых проверок здоровья, отменяется при shutdown
	Ctx    context.Context
	Cancel context.CancelFunc

	Config *config.Config

	stores *stores
}

// NewServer подключается к хранилищам и собирает компоненты
// (Repository → Service → Handler → Gateway)
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.Server == nil {
		cfg.Server = &config.ConfigServer{}
	}

	st, err := openStores(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &Server{Config: cfg, stores: st}
	if err := s.initialize(); err != nil {
		st.close(context.Background())
		return nil, err
	}

	return s, nil
}

func (s *Server) initialize() error {
	cfg := s.Config

	grpcAddr := ":" + strconv.Itoa(cfg.Server.PortGRPC)
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}

	httpAddr := ":" + strconv.Itoa(cfg.Server.PortHTTP)
	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		grpcListener.Close()
		return fmt.Errorf("failed to listen on %s: %w", httpAddr, err)
	}

	noteSvc := notesService.NewNoteService(s.stores.notes, s.stores.search, slog.Default())
	slog.Info("initialized note service")

	api := rest.NewHandler(noteSvc, s.stores.increments, slog.Default())

	s.HealthServer = grpchealth.NewServer()
	interval := 0
	if cfg.Health != nil {
		interval = cfg.Health.CheckInterval
	}
	s.Checker = health.NewChecker(s.HealthServer, time.Duration(interval)*time.Second)
	for _, name := range []string{HealthNotes, HealthSearch, HealthIncrements} {
		s.Checker.Register(name, s.stores.pingers[name])
	}

	s.GRPCServer = grpcapi.NewServer(s.HealthServer, cfg.Server.UseReflection)
	s.GRPCListener = grpcListener

	// Gateway ходит в gRPC по loopback
	gwAddr := net.JoinHostPort("localhost", strconv.Itoa(grpcListener.Addr().(*net.TCPAddr).Port))
	swaggerEnabled := cfg.Swagger != nil && cfg.Swagger.Enabled
	gw, err := gateway.New(gateway.Options{
		GRPCAddr:  gwAddr,
		Config:    cfg.Gateway,
		AuthToken: cfg.Server.AuthToken,
		Swagger:   swaggerEnabled,
	}, api)
	if err != nil {
		grpcListener.Close()
		httpListener.Close()
		return err
	}
	s.Gateway = gw

	s.HTTPListener = httpListener
	s.HTTPServer = &http.Server{
		Handler:           gw,
		ReadTimeout:       seconds(cfg.Server.HTTPReadTimeout),
		WriteTimeout:      seconds(cfg.Server.HTTPWriteTimeout),
		IdleTimeout:       seconds(cfg.Server.HTTPIdleTimeout),
		ReadHeaderTimeout: seconds(cfg.Server.HTTPReadHeaderTimeout),
	}

	s.Ctx, s.Cancel = context.WithCancel(context.Background())

	return nil
}

// Start запускает проверки здоровья (первая сразу), gRPC и HTTP серверы в горутинах
// Возвращает канал ошибок для отслеживания ошибок серверов
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 2)

	go s.Checker.Run(s.Ctx)

	go func() {
		slog.Info("gRPC server listening", "addr", s.GRPCListener.Addr().String())
		if err := s.GRPCServer.Serve(s.GRPCListener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		slog.Info("HTTP server listening", "addr", s.HTTPListener.Addr().String())
		if err := s.HTTPServer.Serve(s.HTTPListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера и закрывает хранилища
func (s *Server) Shutdown() error {
	slog.Info("starting graceful shutdown")

	// Клиенты /healthz сразу видят NOT_SERVING
	s.Cancel()
	s.HealthServer.Shutdown()

	shutdownTimeout := time.Duration(s.Config.Server.GracefulShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.HTTPServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := s.Gateway.Close(); err != nil {
		errs = append(errs, fmt.Errorf("gateway close: %w", err))
	}

	stopped := make(chan struct{})
	go func() {
		s.GRPCServer.GracefulStop()
		close(stopped)
	}()

	// Ожидаем завершения или таймаут
	select {
	case <-stopped:
		slog.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		slog.Warn("graceful shutdown timeout, forcing stop")
		s.GRPCServer.Stop()
		errs = append(errs, ctx.Err())
	}

	if err := s.stores.close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close stores: %w", err))
	}

	return errors.Join(errs...)
}

// HTTPAddr адрес, на котором фактически слушает HTTP сервер
func (s *Server) HTTPAddr() string {
	return s.HTTPListener.Addr().String()
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
