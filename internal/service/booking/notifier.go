package booking

import (
	"context"
	"strconv"
	"time"

	"github.com/tinnkaaa/booking-system/internal/kafka"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"go.uber.org/zap"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type NotifierOption func(*Notifier)

func WithNotificationsTopic(topic string) NotifierOption {
	return func(n *Notifier) {
		n.notificationsTopic = topic
	}
}

// Notifier publishes change events for bookings, tickets and payments.
// Events carry the passenger's e-mail so the worker can notify them.
type Notifier struct {
	producer           Producer
	bookings           repository.BookingRepository
	passengers         repository.PassengerRepository
	bookingTopic       string
	notificationsTopic string
	log                *zap.Logger
	now                func() time.Time
}

func NewNotifier(
	producer Producer,
	bookings repository.BookingRepository,
	passengers repository.PassengerRepository,
	bookingTopic string,
	log *zap.Logger,
	opts ...NotifierOption,
) *Notifier {
	n := &Notifier{
		producer:     producer,
		bookings:     bookings,
		passengers:   passengers,
		bookingTopic: bookingTopic,
		log:          log,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Publish never fails the caller: a nil notifier, no producer or no topic
// is a no-op, and publish errors are logged.
func (n *Notifier) Publish(ctx context.Context, event kafka.ChangeEvent) {
	if n == nil || n.producer == nil || n.bookingTopic == "" {
		return
	}
	event.At = n.now()
	key := event.Entity + ":" + strconv.FormatInt(event.ID, 10)

	if err := n.producer.Publish(ctx, n.bookingTopic, key, event); err != nil {
		n.log.Warn("failed to publish change event", zap.String("type", event.Type), zap.Int64("id", event.ID), zap.Error(err))
		return
	}
	if n.notificationsTopic == "" {
		return
	}

	if event.Email == "" && event.BookingID != 0 {
		event.Email = n.recipient(ctx, event.BookingID)
	}
	if err := n.producer.Publish(ctx, n.notificationsTopic, key, event); err != nil {
		n.log.Warn("failed to publish notification", zap.String("type", event.Type), zap.Int64("id", event.ID), zap.Error(err))
	}
}

func (n *Notifier) recipient(ctx context.Context, bookingID int64) string {
	if n == nil || n.notificationsTopic == "" || n.bookings == nil || n.passengers == nil {
		return ""
	}
	b, err := n.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return ""
	}
	p, err := n.passengers.GetByID(ctx, b.PassengerID)
	if err != nil {
		return ""
	}
	return p.Email
}
