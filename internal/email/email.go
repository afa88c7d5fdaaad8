package email

import (
	"context"

	"github.com/tinnkaaa/booking-system/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers passenger notifications. Delivery is a structured log
// line until an SMTP relay is configured.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.ChangeEvent) error {
	if event.Email == "" {
		s.log.Debug("event has no recipient", zap.String("type", event.Type), zap.Int64("id", event.ID))
		return nil
	}
	s.log.Info("send email",
		zap.String("to", event.Email),
		zap.String("type", event.Type),
		zap.Int64("booking_id", event.BookingID),
		zap.String("status", event.Status),
	)
	return nil
}
