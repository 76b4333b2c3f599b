package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/spf13/cobra"

	"github.com/keilholz/sheetindex/internal/api"
	"github.com/keilholz/sheetindex/internal/config"
	"github.com/keilholz/sheetindex/internal/extract"
	"github.com/keilholz/sheetindex/internal/pipeline"
	"github.com/keilholz/sheetindex/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extraction HTTP service",
	Long: `Run the HTTP service that accepts workbook uploads, identifies
their working sheets in a worker pool, and stores the resulting
indexes in Postgres. Configuration comes from the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	repo := store.NewDocumentRepo(db, log)
	if err := repo.Init(ctx); err != nil {
		return err
	}

	stats := extract.NewStats(time.Hour)

	orch := pipeline.NewOrchestrator(cfg, repo, stats, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting sheetindex", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
