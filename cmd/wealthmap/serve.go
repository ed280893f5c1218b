package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wealthmap/wealthmap"
	"github.com/wealthmap/wealthmap/infrastructure/api"
	apimiddleware "github.com/wealthmap/wealthmap/infrastructure/api/middleware"
	v1 "github.com/wealthmap/wealthmap/infrastructure/api/v1"
	"github.com/wealthmap/wealthmap/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                    Server host to bind to (default: 0.0.0.0)
  PORT                    Server port to listen on (default: 8080)
  DATA_DIR                Data directory (default: ~/.wealthmap)
  DB_URL                  Database URL (default: sqlite:///{data_dir}/wealthmap.db)
  LOG_LEVEL               Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT              Log format: pretty, json (default: pretty)
  CORS_ORIGINS            Comma-separated list of allowed CORS origins

  ATTOM_API_KEY           ATTOM gateway API key
  ATTOM_BASE_URL          ATTOM gateway base URL
  PROVIDER_PAGE_SIZE      Records fetched per provider page (default: 100)
  INGEST_DELAY_SECONDS    Delay between ingested records (default: 1)

  NON_REAL_ESTATE_FACTOR  Non-real-estate wealth multiplier (default: 2)
  LUXURY_ZIPS             Override the luxury ZIP code list
  LUXURY_STATES           Override the luxury state list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars.
	cfg = cfg.WithAddr(host, port)
	addr := cfg.Addr()

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Setup(cfg)
	logger.Info("starting wealthmap", slog.String("version", version), slog.String("addr", addr))

	client, err := wealthmap.New(clientOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("create wealthmap client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close wealthmap client", slog.Any("error", err))
		}
	}()

	server := api.NewServer(addr, cfg.CORSOrigins(), logger)
	router := server.Router()
	router.Use(apimiddleware.Logging(logger))

	router.Mount("/api/v1/properties", v1.NewPropertiesRouter(client.Properties, logger).Routes())
	router.Mount("/api/v1/owners", v1.NewOwnersRouter(client.Owners, logger).Routes())

	router.Get("/health", healthHandler)
	router.Get("/healthz", healthHandler)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"name":"wealthmap","version":"%s"}`, version)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := server.Start(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down server")
		return server.Shutdown(context.Background())
	})

	return group.Wait()
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
