package queue

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends fire-and-forget JSON notification events. Delivery failures
// are logged, never surfaced to the mutation that triggered them.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewPublisher opens a channel on conn and declares the topic exchange.
func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, log: log}, nil
}

// PublishJSON marshals data and publishes it under routingKey.
func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, data interface{}) error {
	body, err := sonic.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Close releases the underlying channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}
