package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/promptfoundry/promptfoundry/internal/api"
	"github.com/promptfoundry/promptfoundry/internal/catalog"
	"github.com/promptfoundry/promptfoundry/internal/config"
	"github.com/promptfoundry/promptfoundry/internal/engine"
	"github.com/promptfoundry/promptfoundry/internal/logging"
	"github.com/promptfoundry/promptfoundry/internal/worker"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("use_cases", len(cat.UseCases())),
		zap.String("source", catalogSource(cfg.CatalogPath)),
	)

	pipeline := engine.NewPipeline(engine.UUIDGenerator{})
	srv := api.New(pipeline, cat, api.Options{
		CORSOrigin:   cfg.CORSOrigin,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
		Exporter:     &engine.StubExporter{BaseURL: cfg.ExportBaseURL},
		Runner:       &engine.StubRunner{},
		Reviewer:     worker.New(cfg.ReviewParallelism, logger),
	})
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Handler(),
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("promptfoundry server listening", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("env", cfg.Env))
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
