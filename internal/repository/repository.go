package repository

import (
	"context"

	"github.com/tinnkaaa/booking-system/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

type AirlineRepository interface {
	List(ctx context.Context) ([]domain.Airline, error)
	GetByID(ctx context.Context, id int64) (*domain.Airline, error)
	Create(ctx context.Context, airline *domain.Airline) error
	Update(ctx context.Context, airline *domain.Airline) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, passenger *domain.Passenger) error
	Update(ctx context.Context, passenger *domain.Passenger) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

// BookingRepository stamps BookingDate on Create and never changes it on Update.
type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

// TicketRepository allows at most one ticket per booking.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

// Store groups the repositories of one backing store.
type Store struct {
	Airports   AirportRepository
	Airlines   AirlineRepository
	Flights    FlightRepository
	Passengers PassengerRepository
	Bookings   BookingRepository
	Tickets    TicketRepository
	Payments   PaymentRepository
}
