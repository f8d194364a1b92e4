package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vritti-hub/slicingpie/internal/api"
	"github.com/vritti-hub/slicingpie/internal/auth"
	"github.com/vritti-hub/slicingpie/internal/config"
	"github.com/vritti-hub/slicingpie/internal/service"
	"github.com/vritti-hub/slicingpie/internal/storage/sqlite"
	"github.com/vritti-hub/slicingpie/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "slicingpie",
	Short: "Dynamic founder equity tracking server",
	Long: `Slicingpie tracks founder contributions (cash, time, revenue,
expenses) in an immutable ledger and computes dynamic equity splits
from it. Configuration changes never rewrite history: each ledger
entry carries a snapshot of the terms in force when it was recorded.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "config.toml", "Path to TOML config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logging.Setup(cfg.Log.Level)

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret not configured: set auth.jwt_secret in %s or the JWT_SECRET environment variable", configPath)
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenDurationHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	server := api.NewServer(
		service.NewFounderService(store),
		service.NewCategoryService(store),
		service.NewLedgerService(store),
		service.NewEquityService(store),
		service.NewAuthService(authenticator, jwtManager),
		jwtManager,
	)
	if cfg.Metrics.Enabled {
		server.EnableMetrics()
	}

	addr := cfg.Addr()
	slog.Info("Server starting", "address", addr, "metrics", cfg.Metrics.Enabled)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
