// glocal orchestrator — drives localization jobs through the stage pipeline
// by reacting to job.created and stage result events.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/cleanup"
	"github.com/glocalhq/glocal/pkg/config"
	"github.com/glocalhq/glocal/pkg/database"
	"github.com/glocalhq/glocal/pkg/orchestrator"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting glocal orchestrator", "version", version.Full())

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbClient, err := database.NewClient(runCtx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	amqpBus, err := bus.Connect(bus.Config{
		URL:      cfg.Bus.URL,
		Exchange: cfg.Bus.Exchange,
		Prefetch: cfg.Bus.Prefetch,
	})
	if err != nil {
		slog.Error("Failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := amqpBus.Close(); err != nil {
			slog.Error("Error closing bus", "error", err)
		}
	}()
	slog.Info("Connected to RabbitMQ", "exchange", cfg.Bus.Exchange)

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	progressBus := progress.NewBus(redisClient)

	retention := cleanup.NewService(dbClient.Client, cfg.Cleanup)
	retention.Start(runCtx)
	defer retention.Stop()

	orch := orchestrator.New(dbClient.Client, amqpBus, progressBus)

	slog.Info("Orchestrator consuming")
	if err := orch.Run(runCtx, amqpBus); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Orchestrator stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
