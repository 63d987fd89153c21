// Package service provides the broker-facing publisher for domain events.
// Errors are logged and returned so callers may ignore failures without
// interrupting the main request flow.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/travel-package-booking/internal/queue"
)

// EventPublisher publishes domain events to RabbitMQ. A connection is
// dialed per publish so the publisher holds no broker state; every
// error path logs and returns instead of panicking, and handlers treat
// a failed publish as non-fatal.
type EventPublisher struct {
	URL string
}

func NewEventPublisher(url string) *EventPublisher {
	return &EventPublisher{URL: url}
}

// PublishBookingStatus publishes a BookingStatusEvent to the
// booking.status queue.
func (p *EventPublisher) PublishBookingStatus(ctx context.Context, event q.BookingStatusEvent) error {
	return p.publish(ctx, q.BookingStatusQueue, event)
}

// PublishPackageChanged publishes a PackageChangedEvent to the
// package.changed queue.
func (p *EventPublisher) PublishPackageChanged(ctx context.Context, event q.PackageChangedEvent) error {
	return p.publish(ctx, q.PackageChangedQueue, event)
}

func (p *EventPublisher) publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
