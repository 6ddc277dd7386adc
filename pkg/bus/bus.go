// Package bus provides the RabbitMQ topic-exchange layer shared by the API,
// the orchestrator and the stage agents. All traffic flows through one
// durable topic exchange; queues are durable and consumed with manual acks
// for at-least-once delivery.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one decoded message body. Returning an error requeues
// the delivery; returning nil acknowledges it.
type Handler func(ctx context.Context, body []byte) error

// Config holds broker connection settings.
type Config struct {
	URL      string
	Exchange string
	Prefetch int
}

// Bus is a single AMQP connection plus channel. Channel operations are
// serialized internally; amqp channels are not safe for concurrent publish.
type Bus struct {
	config Config
	conn   *amqp.Connection
	ch     *amqp.Channel
	mu     sync.Mutex
}

// Binding declares one queue bound to a routing key on the exchange.
type Binding struct {
	Queue      string
	RoutingKey string
}

// Connect dials the broker and declares the topic exchange.
func Connect(cfg Config) (*Bus, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = "jobs"
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 5
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &Bus{config: cfg, conn: conn, ch: ch}, nil
}

// DeclareQueue declares a durable queue and binds it to a routing key.
// Declaring is idempotent; every process declares the topology it uses.
func (b *Bus) DeclareQueue(bindings ...Binding) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, binding := range bindings {
		if _, err := b.ch.QueueDeclare(binding.Queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", binding.Queue, err)
		}
		if err := b.ch.QueueBind(binding.Queue, binding.RoutingKey, b.config.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind %s to %s: %w", binding.Queue, binding.RoutingKey, err)
		}
	}
	return nil
}

// Publish marshals payload as JSON and publishes it persistently under the
// routing key.
func (b *Bus) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message for %s: %w", routingKey, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	err = b.ch.PublishWithContext(ctx, b.config.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", routingKey, err)
	}
	return nil
}

// Consume delivers messages from a queue to the handler until ctx is
// cancelled or the channel closes. The delivery is acked only after the
// handler returns nil; a handler error nacks with requeue so another
// consumer picks the message up.
func (b *Bus) Consume(ctx context.Context, queue string, handler Handler) error {
	deliveries, err := b.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", queue, err)
	}

	log := slog.With("queue", queue)
	log.Info("Consumer started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Consumer stopping")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", queue)
			}
			if err := handler(ctx, delivery.Body); err != nil {
				log.Error("Handler failed, requeueing delivery",
					"routing_key", delivery.RoutingKey, "error", err)
				if nackErr := delivery.Nack(false, true); nackErr != nil {
					log.Error("Failed to nack delivery", "error", nackErr)
				}
				continue
			}
			if ackErr := delivery.Ack(false); ackErr != nil {
				log.Error("Failed to ack delivery", "error", ackErr)
			}
		}
	}
}

// Close tears down the channel and connection.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch != nil {
		_ = b.ch.Close()
		b.ch = nil
	}
	if b.conn != nil {
		if err := b.conn.Close(); err != nil {
			return fmt.Errorf("failed to close rabbitmq connection: %w", err)
		}
		b.conn = nil
	}
	return nil
}
