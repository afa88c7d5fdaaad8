package booking

import (
	"context"
	"fmt"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/kafka"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

// PaymentInput requires Method; an empty Status means Pending.
type PaymentInput struct {
	BookingID int64         `json:"booking_id" validate:"gt=0"`
	Amount    *domain.Money `json:"amount" validate:"required"`
	Method    string        `json:"method"`
	Status    string        `json:"status"`
}

func (in PaymentInput) toDomain(id int64) (*domain.Payment, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !in.Amount.Valid() {
		return nil, fmt.Errorf("%w: amount %s out of range", domain.ErrValidation, in.Amount)
	}
	method, err := domain.ParsePaymentMethod(in.Method)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParsePaymentStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return &domain.Payment{ID: id, BookingID: in.BookingID, Amount: *in.Amount, Method: method, Status: status}, nil
}

type PaymentService struct {
	payments repository.PaymentRepository
	notifier *Notifier
	log      *zap.Logger
}

func NewPaymentService(payments repository.PaymentRepository, notifier *Notifier, log *zap.Logger) *PaymentService {
	return &PaymentService{payments: payments, notifier: notifier, log: log}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}

func (s *PaymentService) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *PaymentService) Create(ctx context.Context, in PaymentInput) (*domain.Payment, error) {
	p, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, paymentEvent("payment_created", p))
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, id int64, in PaymentInput) (*domain.Payment, error) {
	p, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, paymentEvent("payment_updated", p))
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	summary, err := s.payments.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	s.notifier.Publish(ctx, paymentEvent("payment_deleted", p))
	return summary, nil
}

func paymentEvent(eventType string, p *domain.Payment) kafka.ChangeEvent {
	return kafka.ChangeEvent{
		Type:      eventType,
		Entity:    domain.EntityPayments,
		ID:        p.ID,
		BookingID: p.BookingID,
		Status:    string(p.Status),
	}
}
