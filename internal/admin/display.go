package admin

import (
	"context"
	"fmt"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
)

// Display renders list labels that need related rows, such as the
// airline and airports of a flight. When a related row cannot be loaded
// the record's own String is used.
type Display struct {
	repos *repository.Store
}

func NewDisplay(repos *repository.Store) *Display {
	return &Display{repos: repos}
}

// Flight renders "<airline> <number>: <departure> - <arrival>".
func (d *Display) Flight(ctx context.Context, f domain.Flight) string {
	airline, err := d.repos.Airlines.GetByID(ctx, f.AirlineID)
	if err != nil {
		return f.String()
	}
	dep, err := d.repos.Airports.GetByID(ctx, f.DepartureAirportID)
	if err != nil {
		return f.String()
	}
	arr, err := d.repos.Airports.GetByID(ctx, f.ArrivalAirportID)
	if err != nil {
		return f.String()
	}
	return fmt.Sprintf("%s %s: %s - %s", airline, f.FlightNumber, dep, arr)
}

// Booking renders "Booking <id> - <passenger> on flight <flight>".
func (d *Display) Booking(ctx context.Context, b domain.Booking) string {
	passenger, err := d.repos.Passengers.GetByID(ctx, b.PassengerID)
	if err != nil {
		return b.String()
	}
	flight, err := d.repos.Flights.GetByID(ctx, b.FlightID)
	if err != nil {
		return b.String()
	}
	return fmt.Sprintf("Booking %d - %s on flight %s", b.ID, passenger, d.Flight(ctx, *flight))
}

// Ticket renders "Ticket <number> (<passenger>)".
func (d *Display) Ticket(ctx context.Context, t domain.Ticket) string {
	b, err := d.repos.Bookings.GetByID(ctx, t.BookingID)
	if err != nil {
		return t.String()
	}
	passenger, err := d.repos.Passengers.GetByID(ctx, b.PassengerID)
	if err != nil {
		return t.String()
	}
	return fmt.Sprintf("Ticket %s (%s)", t.TicketNumber, passenger)
}
