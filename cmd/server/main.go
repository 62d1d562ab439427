package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"playground-service/internal/config"
	"playground-service/internal/logger"
	"playground-service/internal/server"
)

const configFile = "config.yml"

func main() {
	// Загружаем конфигурацию из файла (путь можно переопределить через CONFIG_FILE)
	appConfig, err := config.InitConfig[config.Config](config.Path(configFile))
	if err != nil {
		slog.Error("error initializing config", "error", err)
		os.Exit(1)
	}

	logger.Setup(appConfig.Logger, os.Stderr)

	srv, err := server.NewServer(context.Background(), appConfig)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	// Канал для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	exitCode := 0
	select {
	case err := <-errChan:
		slog.Error("server error", "error", err)
		exitCode = 1
	case sig := <-sigChan:
		slog.Info("received signal", "signal", sig.String())
	}

	if err := srv.Shutdown(); err != nil {
		slog.Error("shutdown finished with errors", "error", err)
		exitCode = 1
	}

	slog.Info("playground service stopped")
	os.Exit(exitCode)
}
