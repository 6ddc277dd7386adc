// glocal API server — accepts localization jobs over REST and streams
// per-job progress over SSE.
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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/glocalhq/glocal/pkg/api"
	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/config"
	"github.com/glocalhq/glocal/pkg/database"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/services"
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

	slog.Info("Starting glocal API", "version", version.Full(), "http_port", cfg.HTTP.Port)

	ctx := context.Background()

	dbClient, err := database.NewClient(ctx, cfg.Database)
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

	jobService := services.NewJobService(dbClient.Client, amqpBus)
	httpServer := api.NewServer(jobService, dbClient, progressBus, cfg.HTTP)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
