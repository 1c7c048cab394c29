package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"banquet/config"
	"banquet/infras/kafka"

	"github.com/rs/zerolog/log"
)

// Type identifies what happened to a booking or its ledger.
type Type string

const (
	TypeBookingCreated   Type = "booking.created"
	TypeBookingUpdated   Type = "booking.updated"
	TypeBookingConfirmed Type = "booking.confirmed"
	TypeBookingCompleted Type = "booking.completed"
	TypeBookingCancelled Type = "booking.cancelled"
	TypeBookingDeleted   Type = "booking.deleted"
	TypePaymentRecorded  Type = "payment.recorded"
	TypePaymentRefunded  Type = "payment.refunded"
)

// BookingEvent is published on every booking collection change, so consumers
// (calendar views, pipeline boards, caches) can refresh from the latest
// snapshot instead of relying on an ambient broadcast.
type BookingEvent struct {
	Type       Type      `json:"type"`
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentEvent asks the notification consumer to send a receipt or
// confirmation. Delivery is best effort; a failed send never affects the
// committed transition.
type PaymentEvent struct {
	Type       Type      `json:"type"`
	BookingID  string    `json:"booking_id"`
	PaymentID  string    `json:"payment_id"`
	Amount     float64   `json:"amount"`
	ReceiptURL string    `json:"receipt_url,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	BookingChanged(ctx context.Context, event BookingEvent) error
	PaymentRecorded(ctx context.Context, event PaymentEvent) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) BookingChanged(ctx context.Context, event BookingEvent) error {
	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

func (p *publisherImpl) PaymentRecorded(ctx context.Context, event PaymentEvent) error {
	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.Notifications, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish payment notification")

		return fmt.Errorf("failed to publish payment notification: %w", err)
	}

	return nil
}
