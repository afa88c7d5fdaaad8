package booking

import (
	"context"
	"strconv"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/kafka"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

// TicketInput.IsActive defaults to true when omitted.
type TicketInput struct {
	BookingID    int64  `json:"booking_id" validate:"gt=0"`
	TicketNumber string `json:"ticket_number" validate:"required,max=20"`
	IsActive     *bool  `json:"is_active"`
}

func (in TicketInput) toDomain(id int64) (*domain.Ticket, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &domain.Ticket{ID: id, BookingID: in.BookingID, TicketNumber: in.TicketNumber, IsActive: active}, nil
}

type TicketService struct {
	tickets  repository.TicketRepository
	notifier *Notifier
	log      *zap.Logger
}

func NewTicketService(tickets repository.TicketRepository, notifier *Notifier, log *zap.Logger) *TicketService {
	return &TicketService{tickets: tickets, notifier: notifier, log: log}
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

func (s *TicketService) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// Create fails with ErrAlreadyExists when the booking already has a ticket.
func (s *TicketService) Create(ctx context.Context, in TicketInput) (*domain.Ticket, error) {
	t, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, ticketEvent("ticket_created", t))
	return t, nil
}

func (s *TicketService) Update(ctx context.Context, id int64, in TicketInput) (*domain.Ticket, error) {
	t, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.tickets.Update(ctx, t); err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, ticketEvent("ticket_updated", t))
	return t, nil
}

func (s *TicketService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	summary, err := s.tickets.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	s.notifier.Publish(ctx, ticketEvent("ticket_deleted", t))
	return summary, nil
}

func ticketEvent(eventType string, t *domain.Ticket) kafka.ChangeEvent {
	return kafka.ChangeEvent{
		Type:      eventType,
		Entity:    domain.EntityTickets,
		ID:        t.ID,
		BookingID: t.BookingID,
		Status:    "active=" + strconv.FormatBool(t.IsActive),
	}
}
