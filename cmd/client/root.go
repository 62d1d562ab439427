package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"playground-service/pkg/client"

	"github.com/spf13/cobra"
)

const defaultAddress = "http://localhost:8080"

var (
	address string
	token   string
	timeout time.Duration
	verbose bool
)

// rootCmd базовая команда без подкоманд
var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "REST client for playground-service",
	Long: `client calls the playground-service REST API: notes, search,
counters and the greeting endpoint. Responses are printed as JSON.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute добавляет подкоманды и запускает CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&address, "addr", envOr("SERVER_ADDRESS", defaultAddress), "service base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("AUTH_TOKEN"), "bearer token")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// newClient возвращает клиента и контекст с таймаутом запроса
func newClient(cmd *cobra.Command) (*client.Client, context.Context, context.CancelFunc) {
	slog.Debug("calling service", "addr", address, "command", cmd.CommandPath())
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	return client.New(address, token, nil), ctx, cancel
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
