// glocal uploader — consumes youtube.upload requests for finished variants
// and reports the published URL on the progress channel. Uploads are
// simulated in this build.
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

	"github.com/glocalhq/glocal/pkg/agent"
	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/config"
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

	slog.Info("Starting glocal uploader", "version", version.Full())

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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

	uploader := agent.NewUploader(progressBus)

	slog.Info("Uploader consuming")
	if err := uploader.Run(runCtx, amqpBus); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Uploader stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
