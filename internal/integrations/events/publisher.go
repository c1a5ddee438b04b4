// Package events публикует события жизненного цикла бронирований в RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события в durable очереди через default exchange.
// Соединение открывается на каждую публикацию.
type Publisher struct {
	url     string
	timeout time.Duration
	log     Logger
}

// NewPublisher создает издателя событий
func NewPublisher(url string, timeout time.Duration, log Logger) *Publisher {
	return &Publisher{url: url, timeout: timeout, log: log}
}

// PublishBookingCreated публикует booking.created
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	return p.publish(ctx, QueueBookingCreated, event)
}

// PublishBookingStatusChanged публикует booking.status_changed
func (p *Publisher) PublishBookingStatusChanged(ctx context.Context, event BookingStatusChanged) error {
	return p.publish(ctx, QueueBookingStatusChanged, event)
}

func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, queue, err)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.timeout)})
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		return fmt.Errorf("%w: declare %s: %v", ErrPublish, queue, err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = ch.PublishWithContext(publishCtx,
		"",    // default exchange
		queue, // routing key = queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, queue, err)
	}

	p.log.Info("Publish: queue=%s, bytes=%d", queue, len(body))
	return nil
}

// NoopPublisher используется, когда брокер выключен в конфигурации
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(context.Context, BookingCreated) error { return nil }

func (NoopPublisher) PublishBookingStatusChanged(context.Context, BookingStatusChanged) error {
	return nil
}
