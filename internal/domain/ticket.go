package domain

import "time"

type Ticket struct {
	ID           int64     `json:"id"`
	BookingID    int64     `json:"booking_id"`
	TicketNumber string    `json:"ticket_number"`
	IssueDate    time.Time `json:"issue_date"`
	IsActive     bool      `json:"is_active"`
}

func (t Ticket) String() string {
	return "Ticket " + t.TicketNumber
}

func (t Ticket) PrimaryKey() int64 {
	return t.ID
}
