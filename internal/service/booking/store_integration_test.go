package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository/memory"
	"go.uber.org/zap"
)

func TestServices_OverMemoryStore(t *testing.T) {
	ctx := context.Background()
	repos := memory.New().Repositories()
	log := zap.NewNop()

	kbp := &domain.Airport{Code: "KBP", Name: "Boryspil", City: "Kyiv", Country: "Ukraine"}
	require.NoError(t, repos.Airports.Create(ctx, kbp))
	waw := &domain.Airport{Code: "WAW", Name: "Chopin", City: "Warsaw", Country: "Poland"}
	require.NoError(t, repos.Airports.Create(ctx, waw))
	lot := &domain.Airline{Name: "LOT", Code: "LO", Country: "Poland"}
	require.NoError(t, repos.Airlines.Create(ctx, lot))
	flight := &domain.Flight{
		FlightNumber: "LO752", AirlineID: lot.ID, DepartureAirportID: kbp.ID, ArrivalAirportID: waw.ID,
		DepartureTime: time.Now().Add(24 * time.Hour), ArrivalTime: time.Now().Add(26 * time.Hour), Price: 12000,
	}
	require.NoError(t, repos.Flights.Create(ctx, flight))

	passengers := NewPassengerService(repos.Passengers, log)
	bookings := NewBookingService(repos.Bookings, nil, log)
	tickets := NewTicketService(repos.Tickets, nil, log)

	p, err := passengers.Create(ctx, validPassengerInput())
	require.NoError(t, err)

	_, err = passengers.Create(ctx, validPassengerInput())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	b, err := bookings.Create(ctx, BookingInput{FlightID: flight.ID, PassengerID: p.ID, SeatNumber: "4C"})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusBooked, b.Status)
	assert.Equal(t, domain.TravelClassEconomy, b.TravelClass)

	_, err = tickets.Create(ctx, TicketInput{BookingID: b.ID, TicketNumber: "080-1"})
	require.NoError(t, err)
	_, err = tickets.Create(ctx, TicketInput{BookingID: b.ID, TicketNumber: "080-2"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = bookings.Create(ctx, BookingInput{FlightID: 999, PassengerID: p.ID, SeatNumber: "4D"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}
