package domain

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidChoice    = errors.New("value is not a valid choice")
	ErrValidation       = errors.New("validation failed")
)

// DeleteSummary counts the records removed by a cascading delete,
// including the deleted parent itself.
type DeleteSummary struct {
	Airports   int64 `json:"airports,omitempty"`
	Airlines   int64 `json:"airlines,omitempty"`
	Flights    int64 `json:"flights,omitempty"`
	Passengers int64 `json:"passengers,omitempty"`
	Bookings   int64 `json:"bookings,omitempty"`
	Tickets    int64 `json:"tickets,omitempty"`
	Payments   int64 `json:"payments,omitempty"`
}

func (s DeleteSummary) Total() int64 {
	return s.Airports + s.Airlines + s.Flights + s.Passengers + s.Bookings + s.Tickets + s.Payments
}
