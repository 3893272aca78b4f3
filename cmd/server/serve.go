package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the editing API and preview server",
	RunE:  runServe,
}

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	editor := usecase.NewEditor(model.Seed(), usecase.NewIDGenerator(cfg.IDStrategy), logger)

	renderer, err := infra.NewHTMLRenderer()
	if err != nil {
		return err
	}
	preview, err := infra.NewPreviewCache(renderer, editor.Snapshot(), logger)
	if err != nil {
		return err
	}
	editor.Subscribe(preview)

	// infra setup
	pool, err := infra.NewJournalPool(ctx, cfg.JournalDSN)
	if err != nil {
		logger.Warn("journal DB not available", "error", err)
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			return err
		}
	}
	journalRepo := repo.NewJournalRepo(pool)
	if journalRepo.Enabled() {
		journal := repo.NewJournal(journalRepo, logger)
		go journal.Run(context.Background())
		unsubscribe := editor.Subscribe(journal)
		defer func() {
			unsubscribe()
			journal.Close()
		}()
	}

	app := httpadapter.NewApp(httpadapter.NewHandler(editor, preview, logger))

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "id_strategy", cfg.IDStrategy, "journal", journalRepo.Enabled())
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.Shutdown()
	}
}
