package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"vetpost/backend/internal/app"
	"vetpost/backend/internal/config"
	"vetpost/backend/internal/handler"
	transport "vetpost/backend/internal/http"
	"vetpost/backend/internal/logger"
)

const shutdownTimeout = 15 * time.Second

// @title VetPost API
// @version 1.0
// @description Relay between the post planner frontend and the text and photo providers.
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svcs, err := app.Build(ctx, cfg, reg)
	if err != nil {
		logger.Error("init failed", "module", "main", "action", "init", "resource", "app", "result", "failed", "error", err)
		os.Exit(1)
	}

	generateHandler := handler.NewGenerateHandler(svcs.Posts, svcs.Images, cfg.Location, svcs.Metrics)
	healthHandler := handler.NewHealthHandler()
	router := transport.NewRouter(generateHandler, healthHandler, reg, cfg.StaticDir)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Leaves room for a split generation at the full upstream timeout.
		WriteTimeout: cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "main", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "timezone", cfg.Location.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "module", "main", "action", "start", "resource", "http", "result", "failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down", "module", "main", "action", "stop", "resource", "http", "result", "ok")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "module", "main", "action", "stop", "resource", "http", "result", "failed", "error", err)
		}
	}
}
