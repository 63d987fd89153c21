// Package queue contains the background consumer that listens to the
// booking.status queue and writes structured lines to logs/booking.log.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// BookingStatusQueue carries BookingStatusEvent messages.
	BookingStatusQueue = "booking.status"
	// PackageChangedQueue carries PackageChangedEvent messages.
	PackageChangedQueue = "package.changed"
)

// StartBookingStatusConsumer connects to the broker at url, declares the
// booking.status queue (durable), and starts consuming messages. Each
// message is appended to logs/booking.log in a single-line format. The
// function runs a reconnect loop with capped exponential backoff and
// never returns under normal operation; processing errors are logged and
// the offending message rejected so the server keeps running.
func StartBookingStatusConsumer(url string) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("booking-consumer: set QoS failed: %v", err)
	}

	_, err = ch.QueueDeclare(BookingStatusQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(BookingStatusQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("booking-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var ev BookingStatusEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "booking.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	transition := ev.NewStatus
	if ev.OldStatus != "" {
		transition = ev.OldStatus + " -> " + ev.NewStatus
	}

	line := fmt.Sprintf("[%s] Booking %s | booking_id=%d | user_id=%d | user=%q | package_id=%d | destination=%q | travel_date=%s | people=%d | total=%d cents\n",
		ev.OccurredAt, transition, ev.BookingID, ev.UserID, ev.UserName, ev.PackageID, ev.Destination, ev.TravelDate, ev.People, ev.TotalCents)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
