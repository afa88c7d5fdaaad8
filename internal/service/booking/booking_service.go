package booking

import (
	"context"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/kafka"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

// BookingInput leaves TravelClass and Status empty to take their defaults,
// Economy and Booked.
type BookingInput struct {
	FlightID    int64  `json:"flight_id" validate:"gt=0"`
	PassengerID int64  `json:"passenger_id" validate:"gt=0"`
	SeatNumber  string `json:"seat_number" validate:"required,max=10"`
	TravelClass string `json:"travel_class"`
	Status      string `json:"status"`
}

func (in BookingInput) toDomain(id int64) (*domain.Booking, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	class, err := domain.ParseTravelClass(in.TravelClass)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseBookingStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return &domain.Booking{
		ID:          id,
		FlightID:    in.FlightID,
		PassengerID: in.PassengerID,
		SeatNumber:  in.SeatNumber,
		TravelClass: class,
		Status:      status,
	}, nil
}

type BookingService struct {
	bookings repository.BookingRepository
	notifier *Notifier
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, notifier *Notifier, log *zap.Logger) *BookingService {
	return &BookingService{bookings: bookings, notifier: notifier, log: log}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, in BookingInput) (*domain.Booking, error) {
	b, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, bookingEvent("booking_created", b))
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, id int64, in BookingInput) (*domain.Booking, error) {
	b, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, bookingEvent("booking_updated", b))
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	// Resolve the recipient while the booking still exists.
	event := bookingEvent("booking_deleted", b)
	event.Email = s.notifier.recipient(ctx, id)

	summary, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	s.notifier.Publish(ctx, event)
	s.log.Info("booking deleted", zap.Int64("id", id), zap.Int64("tickets", summary.Tickets), zap.Int64("payments", summary.Payments))
	return summary, nil
}

func bookingEvent(eventType string, b *domain.Booking) kafka.ChangeEvent {
	return kafka.ChangeEvent{
		Type:      eventType,
		Entity:    domain.EntityBookings,
		ID:        b.ID,
		BookingID: b.ID,
		Status:    string(b.Status),
	}
}
