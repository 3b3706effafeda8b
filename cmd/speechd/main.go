package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/skybrief/metar-speech/internal/adapter/http"
	kafkaadapter "github.com/skybrief/metar-speech/internal/adapter/kafka"
	"github.com/skybrief/metar-speech/internal/config"
	"github.com/skybrief/metar-speech/internal/observability"
	"github.com/skybrief/metar-speech/internal/pipeline"
	"github.com/skybrief/metar-speech/internal/store"
)

func main() {
	// Load .env for local development; ignore when absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)

	transformer := pipeline.NewCachedTransformer(
		pipeline.NewTransformer(logger), cfg.RenderCacheSize, metrics)

	// Archive is feature-flagged via ARCHIVE_PATH; a nil store disables both
	// the archive leg of the fanout and the briefings endpoint.
	var archive *store.Store
	if cfg.ArchivePath != "" {
		archive, err = store.Open(cfg.ArchivePath, logger)
		if err != nil {
			logger.Error("failed to open briefing archive", "path", cfg.ArchivePath, "error", err)
			os.Exit(1)
		}
		logger.Info("briefing archive enabled", "path", cfg.ArchivePath)
	} else {
		logger.Info("briefing archive disabled")
	}

	var loader pipeline.BatchLoader = writer
	if archive != nil {
		loader = pipeline.NewFanoutLoader(writer, archive)
	}

	p := pipeline.New(reader, transformer, loader, logger, metrics, cfg.BatchSize)

	var briefingStore httpadapter.BriefingStore
	if archive != nil {
		briefingStore = archive
	}
	srv := httpadapter.NewServer(cfg.HTTPAddr, p, briefingStore, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start rendering pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
	if archive != nil {
		if err := archive.Close(); err != nil {
			logger.Error("briefing archive close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
