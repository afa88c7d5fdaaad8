package domain

import "time"

type Flight struct {
	ID                 int64     `json:"id"`
	FlightNumber       string    `json:"flight_number"`
	AirlineID          int64     `json:"airline_id"`
	DepartureAirportID int64     `json:"departure_airport_id"`
	ArrivalAirportID   int64     `json:"arrival_airport_id"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	AircraftType       *string   `json:"aircraft_type"`
	Price              Money     `json:"price"`
}

func (f Flight) String() string {
	return f.FlightNumber
}

func (f Flight) PrimaryKey() int64 {
	return f.ID
}
