package domain

import (
	"fmt"
	"time"
)

type Payment struct {
	ID          int64         `json:"id"`
	BookingID   int64         `json:"booking_id"`
	PaymentDate time.Time     `json:"payment_date"`
	Amount      Money         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"status"`
}

func (p Payment) String() string {
	return fmt.Sprintf("Payment %d - %s (%s)", p.ID, p.Amount, p.Status)
}

func (p Payment) PrimaryKey() int64 {
	return p.ID
}
