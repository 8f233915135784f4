// Package mq публикует события жизненного цикла в RabbitMQ.
package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// channel - часть amqp091.Channel, которая нужна издателю
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitPublisher публикует события в topic exchange, routing key равен типу события
type RabbitPublisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
	logger   *logrus.Logger
}

// NewRabbitPublisher подключается к RabbitMQ и объявляет exchange
func NewRabbitPublisher(url, exchange string, logger *logrus.Logger) (*RabbitPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}
	return &RabbitPublisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

// Publish отправляет событие в exchange
func (p *RabbitPublisher) Publish(ctx context.Context, event models.ProblemEvent) error {
	if p == nil {
		return nil
	}
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s to RabbitMQ: %w", event.Type, err)
	}
	return nil
}

// Close закрывает канал и соединение
func (p *RabbitPublisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		p.logger.WithError(err).Warn("Failed to close RabbitMQ channel")
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

func newPublishing(event models.ProblemEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    fmt.Sprintf("%s:%s:%d", event.ProblemID, event.Type, event.Timestamp.UnixNano()),
		Type:         string(event.Type),
		Timestamp:    event.Timestamp,
		Body:         body,
	}, nil
}
