package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "leadflow/internal/adapter/http"
	"leadflow/internal/adapter/oauth"
	"leadflow/internal/adapter/postgres"
	"leadflow/internal/adapter/usecase"
	"leadflow/internal/adapter/webhook"
	"leadflow/internal/config"
	"leadflow/internal/db"
	"leadflow/internal/schedule"
)

// main is the entry point of the leadflow service. It loads configuration,
// optionally runs database migrations, initializes the database pool and
// repositories, then starts the HTTP server and (when enabled) the launch
// dispatcher. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	svc := usecase.NewService(
		postgres.NewCampaignRepository(pool),
		postgres.NewLeadRepository(pool),
		postgres.NewUserRepository(pool),
		postgres.NewCityRepository(pool),
		postgres.NewScheduleRepository(pool),
		webhook.NewClient(cfg.Webhook, logger),
		oauth.NewRefresher(cfg.OAuth),
		logger,
	)

	if cfg.Schedule.Enabled {
		dispatcher := schedule.NewDispatcher(postgres.NewScheduleRepository(pool), svc, logger, cfg.Schedule.Tick)
		go dispatcher.Run(ctx)
		logger.Info("launch dispatcher running", slog.Duration("tick", cfg.Schedule.Tick))
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.Auth.JWTSecret)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
