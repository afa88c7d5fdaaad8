package domain

import (
	"fmt"
	"time"
)

type Booking struct {
	ID          int64         `json:"id"`
	FlightID    int64         `json:"flight_id"`
	PassengerID int64         `json:"passenger_id"`
	BookingDate time.Time     `json:"booking_date"`
	SeatNumber  string        `json:"seat_number"`
	TravelClass TravelClass   `json:"travel_class"`
	Status      BookingStatus `json:"status"`
}

func (b Booking) String() string {
	return fmt.Sprintf("Booking %d", b.ID)
}

func (b Booking) PrimaryKey() int64 {
	return b.ID
}
