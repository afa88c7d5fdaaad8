package domain

// Entity names as used in admin URLs, cache keys and change events.
const (
	EntityAirports   = "airports"
	EntityAirlines   = "airlines"
	EntityFlights    = "flights"
	EntityPassengers = "passengers"
	EntityBookings   = "bookings"
	EntityTickets    = "tickets"
	EntityPayments   = "payments"
)
