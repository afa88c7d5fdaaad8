package api

import (
	"github.com/tinnkaaa/booking-system/internal/admin"
	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/service/booking"
	"github.com/tinnkaaa/booking-system/internal/service/flights"
)

// Services holds the admin's entity services. A nil service leaves its
// entity unregistered. Display, when set, supplies list labels that
// include related rows.
type Services struct {
	Airlines   *flights.AirlineService
	Airports   *flights.AirportService
	Flights    *flights.FlightService
	Bookings   *booking.BookingService
	Passengers *booking.PassengerService
	Tickets    *booking.TicketService
	Payments   *booking.PaymentService
	Display    *admin.Display
}

// AdminResources builds a handler per configured service, in the menu
// order of admin.Entities.
func AdminResources(s Services) []Registrar {
	handlers := make(map[string]Registrar)
	if s.Airlines != nil {
		handlers[domain.EntityAirlines] = NewResourceHandler[domain.Airline, flights.AirlineInput](admin.Airlines, s.Airlines)
	}
	if s.Airports != nil {
		handlers[domain.EntityAirports] = NewResourceHandler[domain.Airport, flights.AirportInput](admin.Airports, s.Airports)
	}
	if s.Flights != nil {
		h := NewResourceHandler[domain.Flight, flights.FlightInput](admin.Flights, s.Flights)
		if s.Display != nil {
			h.WithDisplay(s.Display.Flight)
		}
		handlers[domain.EntityFlights] = h
	}
	if s.Bookings != nil {
		h := NewResourceHandler[domain.Booking, booking.BookingInput](admin.Bookings, s.Bookings)
		if s.Display != nil {
			h.WithDisplay(s.Display.Booking)
		}
		handlers[domain.EntityBookings] = h
	}
	if s.Passengers != nil {
		handlers[domain.EntityPassengers] = NewResourceHandler[domain.Passenger, booking.PassengerInput](admin.Passengers, s.Passengers)
	}
	if s.Tickets != nil {
		h := NewResourceHandler[domain.Ticket, booking.TicketInput](admin.Tickets, s.Tickets)
		if s.Display != nil {
			h.WithDisplay(s.Display.Ticket)
		}
		handlers[domain.EntityTickets] = h
	}
	if s.Payments != nil {
		handlers[domain.EntityPayments] = NewResourceHandler[domain.Payment, booking.PaymentInput](admin.Payments, s.Payments)
	}

	resources := make([]Registrar, 0, len(handlers))
	for _, e := range admin.Entities() {
		if h, ok := handlers[e.Name]; ok {
			resources = append(resources, h)
		}
	}
	return resources
}
