// Package admin describes which entities the administrative surface
// exposes and how each of their fields is presented.
package admin

import (
	"github.com/tinnkaaa/booking-system/internal/domain"
)

type FieldType string

const (
	TypeString    FieldType = "string"
	TypeEmail     FieldType = "email"
	TypeDate      FieldType = "date"
	TypeDateTime  FieldType = "datetime"
	TypeDecimal   FieldType = "decimal"
	TypeBoolean   FieldType = "boolean"
	TypeReference FieldType = "reference"
	TypeChoice    FieldType = "choice"
)

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Type      FieldType `json:"type"`
	MaxLength int       `json:"max_length,omitempty"`
	Required  bool      `json:"required"`
	Unique    bool      `json:"unique,omitempty"`
	Nullable  bool      `json:"nullable,omitempty"`
	Choices   []Choice  `json:"choices,omitempty"`
	Default   any       `json:"default,omitempty"`
	// References names the target entity of a reference field.
	References string `json:"references,omitempty"`
	// AutoNowAdd fields are set once by the store and never edited.
	AutoNowAdd bool `json:"auto_now_add,omitempty"`
}

// Entity is the admin metadata of one model.
type Entity struct {
	Name     string   `json:"name"`
	Singular string   `json:"singular"`
	Plural   string   `json:"plural"`
	Ordering []string `json:"ordering"`
	Fields   []Field  `json:"fields"`
}

// Editable returns the fields accepted on create and update.
func (e Entity) Editable() []Field {
	out := make([]Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if !f.AutoNowAdd {
			out = append(out, f)
		}
	}
	return out
}

var (
	Airports = Entity{
		Name: domain.EntityAirports, Singular: "Airport", Plural: "Airports",
		Ordering: []string{"city", "code"},
		Fields: []Field{
			{Name: "code", Label: "IATA code", Type: TypeString, MaxLength: 5, Required: true, Unique: true},
			{Name: "name", Label: "Airport name", Type: TypeString, MaxLength: 200, Required: true},
			{Name: "city", Label: "City", Type: TypeString, MaxLength: 100, Required: true},
			{Name: "country", Label: "Country", Type: TypeString, MaxLength: 100, Required: true},
		},
	}

	Airlines = Entity{
		Name: domain.EntityAirlines, Singular: "Airline", Plural: "Airlines",
		Ordering: []string{"name"},
		Fields: []Field{
			{Name: "name", Label: "Airline name", Type: TypeString, MaxLength: 200, Required: true},
			{Name: "code", Label: "IATA code", Type: TypeString, MaxLength: 5, Required: true, Unique: true},
			{Name: "country", Label: "Country", Type: TypeString, MaxLength: 100, Required: true},
		},
	}

	Flights = Entity{
		Name: domain.EntityFlights, Singular: "Flight", Plural: "Flights",
		Ordering: []string{"departure_time"},
		Fields: []Field{
			{Name: "flight_number", Label: "Flight number", Type: TypeString, MaxLength: 10, Required: true, Unique: true},
			{Name: "airline_id", Label: "Airline", Type: TypeReference, Required: true, References: domain.EntityAirlines},
			{Name: "departure_airport_id", Label: "Departure", Type: TypeReference, Required: true, References: domain.EntityAirports},
			{Name: "arrival_airport_id", Label: "Arrival", Type: TypeReference, Required: true, References: domain.EntityAirports},
			{Name: "departure_time", Label: "Departure time", Type: TypeDateTime, Required: true},
			{Name: "arrival_time", Label: "Arrival time", Type: TypeDateTime, Required: true},
			{Name: "aircraft_type", Label: "Aircraft type", Type: TypeString, MaxLength: 50, Nullable: true},
			{Name: "price", Label: "Base price", Type: TypeDecimal, Required: true},
		},
	}

	Passengers = Entity{
		Name: domain.EntityPassengers, Singular: "Passenger", Plural: "Passengers",
		Ordering: []string{"last_name", "first_name"},
		Fields: []Field{
			{Name: "first_name", Label: "First name", Type: TypeString, MaxLength: 50, Required: true},
			{Name: "last_name", Label: "Last name", Type: TypeString, MaxLength: 50, Required: true},
			{Name: "date_of_birth", Label: "Date of birth", Type: TypeDate, Required: true},
			{Name: "passport_number", Label: "Passport number", Type: TypeString, MaxLength: 20, Required: true, Unique: true},
			{Name: "nationality", Label: "Nationality", Type: TypeString, MaxLength: 50, Required: true},
			{Name: "email", Label: "E-mail", Type: TypeEmail, MaxLength: 254, Required: true},
			{Name: "phone", Label: "Phone", Type: TypeString, MaxLength: 20, Required: true},
		},
	}

	Bookings = Entity{
		Name: domain.EntityBookings, Singular: "Booking", Plural: "Bookings",
		Ordering: []string{"-booking_date"},
		Fields: []Field{
			{Name: "flight_id", Label: "Flight", Type: TypeReference, Required: true, References: domain.EntityFlights},
			{Name: "passenger_id", Label: "Passenger", Type: TypeReference, Required: true, References: domain.EntityPassengers},
			{Name: "booking_date", Label: "Booking date", Type: TypeDateTime, AutoNowAdd: true},
			{Name: "seat_number", Label: "Seat number", Type: TypeString, MaxLength: 10, Required: true},
			{
				Name: "travel_class", Label: "Travel class", Type: TypeChoice, MaxLength: 20,
				Default: string(domain.TravelClassEconomy),
				Choices: []Choice{
					{Value: string(domain.TravelClassBusiness), Label: "Business"},
					{Value: string(domain.TravelClassEconomy), Label: "Economy"},
					{Value: string(domain.TravelClassFirst), Label: "First class"},
				},
			},
			{
				Name: "status", Label: "Status", Type: TypeChoice, MaxLength: 20,
				Default: string(domain.BookingStatusBooked),
				Choices: []Choice{
					{Value: string(domain.BookingStatusBooked), Label: "Booked"},
					{Value: string(domain.BookingStatusCheckedIn), Label: "Check-in completed"},
					{Value: string(domain.BookingStatusCancelled), Label: "Cancelled"},
				},
			},
		},
	}

	Tickets = Entity{
		Name: domain.EntityTickets, Singular: "Ticket", Plural: "Tickets",
		Ordering: []string{"-issue_date"},
		Fields: []Field{
			{Name: "booking_id", Label: "Booking", Type: TypeReference, Required: true, Unique: true, References: domain.EntityBookings},
			{Name: "ticket_number", Label: "Ticket number", Type: TypeString, MaxLength: 20, Required: true, Unique: true},
			{Name: "issue_date", Label: "Issue date", Type: TypeDateTime, AutoNowAdd: true},
			{Name: "is_active", Label: "Active ticket", Type: TypeBoolean, Default: true},
		},
	}

	Payments = Entity{
		Name: domain.EntityPayments, Singular: "Payment", Plural: "Payments",
		Ordering: []string{"-payment_date"},
		Fields: []Field{
			{Name: "booking_id", Label: "Booking", Type: TypeReference, Required: true, References: domain.EntityBookings},
			{Name: "payment_date", Label: "Payment date", Type: TypeDateTime, AutoNowAdd: true},
			{Name: "amount", Label: "Amount", Type: TypeDecimal, Required: true},
			{
				Name: "method", Label: "Payment method", Type: TypeChoice, MaxLength: 20, Required: true,
				Choices: []Choice{
					{Value: string(domain.PaymentMethodCard), Label: "Card"},
					{Value: string(domain.PaymentMethodPayPal), Label: "PayPal"},
					{Value: string(domain.PaymentMethodCash), Label: "Cash"},
				},
			},
			{
				Name: "status", Label: "Status", Type: TypeChoice, MaxLength: 20,
				Default: string(domain.PaymentStatusPending),
				Choices: []Choice{
					{Value: string(domain.PaymentStatusPaid), Label: "Paid"},
					{Value: string(domain.PaymentStatusPending), Label: "Pending"},
					{Value: string(domain.PaymentStatusFailed), Label: "Failed"},
				},
			},
		},
	}
)

// Entities lists every entity known to the admin, in menu order.
func Entities() []Entity {
	return []Entity{Airlines, Airports, Flights, Bookings, Passengers, Tickets, Payments}
}
