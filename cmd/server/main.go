package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"plughub/internal/config"
	"plughub/internal/db"
	"plughub/internal/handler"
	plughubhttp "plughub/internal/http"
	"plughub/internal/ratelimit"
	"plughub/internal/repository"
	"plughub/internal/scheduler"
	"plughub/internal/service"
	"plughub/pkg/logger"
	"plughub/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.MkdirAll(cfg.ArtifactDir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	if err := snowflake.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.DBPath)
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	pluginRepo := repository.NewPluginRepository(database)
	eventRepo := repository.NewDownloadEventRepository(database)

	policies := ratelimit.Policies{
		ratelimit.KindAnonymous: {Max: cfg.AnonDownloadMax, Window: cfg.AnonDownloadWindow},
		ratelimit.KindUser:      {Max: cfg.UserDownloadMax, Window: cfg.UserDownloadWindow},
	}

	pluginService := service.NewPluginService(pluginRepo)
	downloadService := service.NewDownloadService(pluginRepo, eventRepo, policies)

	pluginHandler := handler.NewPluginHandler(pluginService)
	downloadHandler := handler.NewDownloadHandler(downloadService, pluginService)

	e := plughubhttp.NewRouter(pluginHandler, downloadHandler, cfg.JWTSecret)

	if cfg.EventRetention > 0 {
		pruner := scheduler.New(downloadService, cfg.PruneInterval, cfg.EventRetention)
		pruner.Start()
		defer pruner.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
