package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
)

type fixture struct {
	repos     *repository.Store
	clock     time.Time
	kbp       domain.Airport
	lhr       domain.Airport
	airline   domain.Airline
	flight    domain.Flight
	passenger domain.Passenger
}

// newFixture seeds two airports, an airline, a flight and a passenger.
// The clock advances one minute per insert timestamp.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{clock: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	store := New(WithClock(func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}))
	f.repos = store.Repositories()
	ctx := context.Background()

	f.kbp = domain.Airport{Code: "KBP", Name: "Boryspil", City: "Kyiv", Country: "Ukraine"}
	require.NoError(t, f.repos.Airports.Create(ctx, &f.kbp))
	f.lhr = domain.Airport{Code: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom"}
	require.NoError(t, f.repos.Airports.Create(ctx, &f.lhr))

	f.airline = domain.Airline{Name: "Ukraine International", Code: "PS", Country: "Ukraine"}
	require.NoError(t, f.repos.Airlines.Create(ctx, &f.airline))

	f.flight = domain.Flight{
		FlightNumber:       "PS101",
		AirlineID:          f.airline.ID,
		DepartureAirportID: f.kbp.ID,
		ArrivalAirportID:   f.lhr.ID,
		DepartureTime:      time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		ArrivalTime:        time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
		Price:              19999,
	}
	require.NoError(t, f.repos.Flights.Create(ctx, &f.flight))

	f.passenger = domain.Passenger{
		FirstName:      "Olena",
		LastName:       "Shevchenko",
		DateOfBirth:    domain.NewDate(1990, time.March, 14),
		PassportNumber: "FA123456",
		Nationality:    "Ukrainian",
		Email:          "olena@example.com",
		Phone:          "+380501234567",
	}
	require.NoError(t, f.repos.Passengers.Create(ctx, &f.passenger))
	return f
}

func (f *fixture) book(t *testing.T, seat string) domain.Booking {
	t.Helper()
	b := domain.Booking{
		FlightID:    f.flight.ID,
		PassengerID: f.passenger.ID,
		SeatNumber:  seat,
		TravelClass: domain.TravelClassEconomy,
		Status:      domain.BookingStatusBooked,
	}
	require.NoError(t, f.repos.Bookings.Create(context.Background(), &b))
	return b
}

func TestAirports_UniqueCode(t *testing.T) {
	f := newFixture(t)

	dup := domain.Airport{Code: "KBP", Name: "Other", City: "Elsewhere", Country: "Nowhere"}
	err := f.repos.Airports.Create(context.Background(), &dup)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Zero(t, dup.ID)

	list, err := f.repos.Airports.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestAirports_UpdateToTakenCode(t *testing.T) {
	f := newFixture(t)

	changed := f.lhr
	changed.Code = "KBP"
	err := f.repos.Airports.Update(context.Background(), &changed)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	// Keeping its own code is not a conflict.
	same := f.lhr
	same.Name = "London Heathrow"
	assert.NoError(t, f.repos.Airports.Update(context.Background(), &same))
}

func TestAirports_OrderedByCityThenCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, a := range []domain.Airport{
		{Code: "STN", Name: "Stansted", City: "London", Country: "United Kingdom"},
		{Code: "IEV", Name: "Zhuliany", City: "Kyiv", Country: "Ukraine"},
		{Code: "AMS", Name: "Schiphol", City: "Amsterdam", Country: "Netherlands"},
		{Code: "LGW", Name: "Gatwick", City: "London", Country: "United Kingdom"},
	} {
		a := a
		require.NoError(t, f.repos.Airports.Create(ctx, &a))
	}

	list, err := f.repos.Airports.List(ctx)
	require.NoError(t, err)

	codes := make([]string, 0, len(list))
	for _, a := range list {
		codes = append(codes, a.Code)
	}
	assert.Equal(t, []string{"AMS", "IEV", "KBP", "LGW", "LHR", "STN"}, codes)
}

func TestPassengers_UniquePassport(t *testing.T) {
	f := newFixture(t)

	dup := f.passenger
	dup.ID = 0
	dup.FirstName = "Someone"
	err := f.repos.Passengers.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "passport_number")
}

func TestFlights_UniqueNumberAndReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dup := f.flight
	dup.ID = 0
	assert.ErrorIs(t, f.repos.Flights.Create(ctx, &dup), domain.ErrAlreadyExists)

	orphan := f.flight
	orphan.ID = 0
	orphan.FlightNumber = "PS102"
	orphan.AirlineID = 999
	assert.ErrorIs(t, f.repos.Flights.Create(ctx, &orphan), domain.ErrInvalidReference)
}

func TestFlights_SameAirportBothEndsAllowed(t *testing.T) {
	f := newFixture(t)

	loop := f.flight
	loop.ID = 0
	loop.FlightNumber = "PS900"
	loop.ArrivalAirportID = loop.DepartureAirportID
	loop.ArrivalTime = loop.DepartureTime.Add(-time.Hour)
	assert.NoError(t, f.repos.Flights.Create(context.Background(), &loop))
}

func TestBookings_DateSetOnceAndNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, "12A")
	second := f.book(t, "12B")
	assert.True(t, second.BookingDate.After(first.BookingDate))

	list, err := f.repos.Bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	edited := first
	edited.Status = domain.BookingStatusCheckedIn
	edited.BookingDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.repos.Bookings.Update(ctx, &edited))
	assert.Equal(t, first.BookingDate, edited.BookingDate)

	stored, err := f.repos.Bookings.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.BookingDate, stored.BookingDate)
	assert.Equal(t, domain.BookingStatusCheckedIn, stored.Status)
}

func TestBookings_RejectsUnknownChoice(t *testing.T) {
	f := newFixture(t)

	b := domain.Booking{
		FlightID:    f.flight.ID,
		PassengerID: f.passenger.ID,
		SeatNumber:  "1A",
		TravelClass: "Premium",
		Status:      domain.BookingStatusBooked,
	}
	assert.ErrorIs(t, f.repos.Bookings.Create(context.Background(), &b), domain.ErrInvalidChoice)
}

func TestTickets_OnePerBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, "3C")

	first := domain.Ticket{BookingID: b.ID, TicketNumber: "566-0000000001", IsActive: true}
	require.NoError(t, f.repos.Tickets.Create(ctx, &first))
	assert.False(t, first.IssueDate.IsZero())

	second := domain.Ticket{BookingID: b.ID, TicketNumber: "566-0000000002", IsActive: true}
	err := f.repos.Tickets.Create(ctx, &second)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "booking_id")

	other := f.book(t, "3D")
	sameNumber := domain.Ticket{BookingID: other.ID, TicketNumber: "566-0000000001"}
	err = f.repos.Tickets.Create(ctx, &sameNumber)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "ticket_number")
}

func TestFlights_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b1 := f.book(t, "1A")
	b2 := f.book(t, "1B")
	require.NoError(t, f.repos.Tickets.Create(ctx, &domain.Ticket{BookingID: b1.ID, TicketNumber: "T1", IsActive: true}))
	require.NoError(t, f.repos.Payments.Create(ctx, &domain.Payment{BookingID: b1.ID, Amount: 19999, Method: domain.PaymentMethodCard, Status: domain.PaymentStatusPaid}))
	require.NoError(t, f.repos.Payments.Create(ctx, &domain.Payment{BookingID: b2.ID, Amount: 5000, Method: domain.PaymentMethodCash, Status: domain.PaymentStatusPending}))

	sum, err := f.repos.Flights.Delete(ctx, f.flight.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteSummary{Flights: 1, Bookings: 2, Tickets: 1, Payments: 2}, sum)

	bookings, _ := f.repos.Bookings.List(ctx)
	tickets, _ := f.repos.Tickets.List(ctx)
	payments, _ := f.repos.Payments.List(ctx)
	assert.Empty(t, bookings)
	assert.Empty(t, tickets)
	assert.Empty(t, payments)

	// Airports, airline and passenger survive.
	_, err = f.repos.Passengers.GetByID(ctx, f.passenger.ID)
	assert.NoError(t, err)
	_, err = f.repos.Airports.GetByID(ctx, f.kbp.ID)
	assert.NoError(t, err)
}

func TestAirports_DeleteCascadesThroughFlights(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, "7F")
	require.NoError(t, f.repos.Tickets.Create(ctx, &domain.Ticket{BookingID: b.ID, TicketNumber: "T7", IsActive: true}))

	sum, err := f.repos.Airports.Delete(ctx, f.lhr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteSummary{Airports: 1, Flights: 1, Bookings: 1, Tickets: 1}, sum)
	assert.Equal(t, int64(4), sum.Total())

	_, err = f.repos.Flights.GetByID(ctx, f.flight.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.repos.Airports.GetByID(ctx, f.kbp.ID)
	assert.NoError(t, err)
}

func TestPassengers_DeleteCascadesBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, "2A")

	sum, err := f.repos.Passengers.Delete(ctx, f.passenger.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Bookings)

	_, err = f.repos.Flights.GetByID(ctx, f.flight.ID)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.repos.Bookings.Delete(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.repos.Airlines.Delete(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.repos.Tickets.Delete(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayments_DateSetOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, "9A")

	p := domain.Payment{BookingID: b.ID, Amount: 1250, Method: domain.PaymentMethodPayPal, Status: domain.PaymentStatusPending}
	require.NoError(t, f.repos.Payments.Create(ctx, &p))
	created := p.PaymentDate

	p.Status = domain.PaymentStatusPaid
	p.PaymentDate = time.Time{}
	require.NoError(t, f.repos.Payments.Update(ctx, &p))
	assert.Equal(t, created, p.PaymentDate)
}
