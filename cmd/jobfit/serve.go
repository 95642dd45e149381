package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sebastian-gasior/jobfit/internal/config"
	"github.com/sebastian-gasior/jobfit/internal/engine"
	"github.com/sebastian-gasior/jobfit/internal/logger"
	"github.com/sebastian-gasior/jobfit/internal/server"
	"github.com/sebastian-gasior/jobfit/internal/stats"
	"github.com/sebastian-gasior/jobfit/internal/store"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the analysis engine and profile storage. Profile storage and usage statistics require DATABASE_URL; without it the server runs analysis-only.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config JSON")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *store.DB
	var recorder stats.Recorder = stats.Nop{}
	if cfg.DatabaseURL != "" {
		db, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		recorder = stats.NewDBRecorder(db.Pool())
	}

	eng := engine.New(engine.Options{
		CacheSize: cfg.CacheSize,
		Logger:    log,
		Stats:     recorder,
	})

	srv := server.New(server.Config{
		Port:   cfg.Port,
		Engine: eng,
		DB:     db,
		Logger: log,
	})

	return srv.Run(ctx)
}
