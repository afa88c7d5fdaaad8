// Package memory is an in-process implementation of the booking store. It
// enforces the same unique, reference and cascade rules as the PostgreSQL
// schema and backs the "memory" database driver.
package memory

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	seq        int64
	airports   map[int64]domain.Airport
	airlines   map[int64]domain.Airline
	flights    map[int64]domain.Flight
	passengers map[int64]domain.Passenger
	bookings   map[int64]domain.Booking
	tickets    map[int64]domain.Ticket
	payments   map[int64]domain.Payment
}

type Option func(*Store)

// WithClock overrides the source of insert timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		airports:   make(map[int64]domain.Airport),
		airlines:   make(map[int64]domain.Airline),
		flights:    make(map[int64]domain.Flight),
		passengers: make(map[int64]domain.Passenger),
		bookings:   make(map[int64]domain.Booking),
		tickets:    make(map[int64]domain.Ticket),
		payments:   make(map[int64]domain.Payment),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() *repository.Store {
	return &repository.Store{
		Airports:   airportRepo{s},
		Airlines:   airlineRepo{s},
		Flights:    flightRepo{s},
		Passengers: passengerRepo{s},
		Bookings:   bookingRepo{s},
		Tickets:    ticketRepo{s},
		Payments:   paymentRepo{s},
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func alreadyExists(field string) error {
	return fmt.Errorf("%s: %w", field, domain.ErrAlreadyExists)
}

func invalidReference(field string) error {
	return fmt.Errorf("%s: %w", field, domain.ErrInvalidReference)
}

func sortedValues[T any](m map[int64]T, compare func(a, b T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, compare)
	return out
}

// Cascade helpers. Callers hold the write lock.

func (s *Store) deleteBookingsWhere(match func(domain.Booking) bool, sum *domain.DeleteSummary) {
	for id, b := range s.bookings {
		if !match(b) {
			continue
		}
		for tid, t := range s.tickets {
			if t.BookingID == id {
				delete(s.tickets, tid)
				sum.Tickets++
			}
		}
		for pid, p := range s.payments {
			if p.BookingID == id {
				delete(s.payments, pid)
				sum.Payments++
			}
		}
		delete(s.bookings, id)
		sum.Bookings++
	}
}

func (s *Store) deleteFlightsWhere(match func(domain.Flight) bool, sum *domain.DeleteSummary) {
	for id, f := range s.flights {
		if !match(f) {
			continue
		}
		s.deleteBookingsWhere(func(b domain.Booking) bool { return b.FlightID == id }, sum)
		delete(s.flights, id)
		sum.Flights++
	}
}

func byID(a, b int64) int { return cmp.Compare(a, b) }
