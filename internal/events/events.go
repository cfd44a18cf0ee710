package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/shared/constant"
)

const (
	TypeBookingCreated     = "booking.created"
	TypeBookingCancelled   = "booking.cancelled"
	TypeBookingRescheduled = "booking.rescheduled"
)

// BookingEvent is the lifecycle notification published after a booking
// transaction commits. Downstream consumers (settlement, notifications)
// key on Type.
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    int64     `json:"booking_id"`
	UserID       int64     `json:"user_id"`
	RoomID       int64     `json:"room_id"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	TotalAmount  float64   `json:"total_amount"`
	RefundAmount float64   `json:"refund_amount,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
		otel:   otel,
	}
}

func (p *publisherImpl) PublishBookingEvent(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !p.cfg.Events.Kafka.Enable {
		return nil
	}

	scope.SetAttribute("event.type", event.Type)
	scope.SetAttribute("booking.id", event.BookingID)

	message := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Events.Kafka.Topic, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Int64("bookingID", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
