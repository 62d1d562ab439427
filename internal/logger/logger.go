// Package logger настраивает slog по секции logger конфигурации.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"playground-service/internal/config"
)

// New создает логгер с уровнем и форматом из конфигурации
func New(cfg *config.ConfigLogger, w io.Writer) *slog.Logger {
	level, format := "info", "text"
	if cfg != nil {
		level, format = cfg.Level, cfg.Format
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Setup создает логгер и делает его логгером по умолчанию
func Setup(cfg *config.ConfigLogger, w io.Writer) *slog.Logger {
	l := New(cfg, w)
	slog.SetDefault(l)
	return l
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
