package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/darkforge/internal/analyzer"
	"github.com/jonathan/darkforge/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: "Start an HTTP server exposing candidate generation and strength analysis. " +
		"Generation runs and analysis batches are stored when a database is configured.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := appConfig.AnalyzerSettings()
	if err != nil {
		return err
	}
	an, err := analyzer.New(settings, analyzer.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build analyzer: %w", err)
	}

	port := appConfig.Server.Port
	if servePort > 0 {
		port = servePort
	}

	opts := []server.Option{server.WithLogger(logger)}
	store, err := openStore(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, server.WithStore(store))
	} else {
		logger.Info("No database configured; history endpoints are disabled")
	}

	srv, err := server.New(server.Config{
		Port:        port,
		APIKey:      appConfig.Server.APIKey,
		CurrentYear: appConfig.Generator.CurrentYear,
		TargetMin:   appConfig.Generator.TargetMin,
		TargetMax:   appConfig.Generator.TargetMax,
		MaxBatch:    appConfig.Server.MaxBatch,
		RateLimit:   appConfig.RateLimitSettings(),
	}, an, opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Serving API", zap.Int("port", port), zap.Bool("auth", appConfig.Server.APIKey != ""))
	return srv.Start(ctx)
}
