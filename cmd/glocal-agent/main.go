// glocal agent — runs one stage worker. The stage is selected with -stage
// (or the STAGE env var), so a deployment runs one agent process per stage
// and scales them independently.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/glocalhq/glocal/pkg/agent"
	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/config"
	"github.com/glocalhq/glocal/pkg/database"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/storage"
	"github.com/glocalhq/glocal/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	stageName := flag.String("stage", getEnv("STAGE", ""), "Pipeline stage to serve (asr, translate, tts, mix, subs, textinframe, qc)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	handler, ok := agent.HandlerFor(pipeline.Stage(*stageName))
	if !ok {
		slog.Error("Unknown stage", "stage", *stageName)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting glocal agent", "version", version.Full(), "stage", *stageName)

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

	store, err := storage.New(runCtx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Object storage ready", "bucket", store.Bucket())

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

	runner := agent.NewRunner(handler, dbClient.Client, amqpBus, progressBus, store)

	slog.Info("Agent consuming", "stage", *stageName)
	if err := runner.Run(runCtx, amqpBus); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Agent stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
