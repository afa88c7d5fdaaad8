package memory

import (
	"cmp"
	"context"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
)

type passengerRepo struct{ s *Store }

func (r passengerRepo) List(_ context.Context) ([]domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.passengers, func(a, b domain.Passenger) int {
		return cmp.Or(cmp.Compare(a.LastName, b.LastName), cmp.Compare(a.FirstName, b.FirstName), byID(a.ID, b.ID))
	}), nil
}

func (r passengerRepo) GetByID(_ context.Context, id int64) (*domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.passengers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r passengerRepo) Create(_ context.Context, p *domain.Passenger) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(p); err != nil {
		return err
	}
	p.ID = r.s.nextID()
	r.s.passengers[p.ID] = *p
	return nil
}

func (r passengerRepo) Update(_ context.Context, p *domain.Passenger) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.passengers[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.check(p); err != nil {
		return err
	}
	r.s.passengers[p.ID] = *p
	return nil
}

func (r passengerRepo) check(p *domain.Passenger) error {
	for _, other := range r.s.passengers {
		if other.ID != p.ID && other.PassportNumber == p.PassportNumber {
			return alreadyExists("passport_number")
		}
	}
	return nil
}

func (r passengerRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum domain.DeleteSummary
	if _, ok := r.s.passengers[id]; !ok {
		return sum, domain.ErrNotFound
	}
	r.s.deleteBookingsWhere(func(b domain.Booking) bool { return b.PassengerID == id }, &sum)
	delete(r.s.passengers, id)
	sum.Passengers++
	return sum, nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.bookings, func(a, b domain.Booking) int {
		return cmp.Or(b.BookingDate.Compare(a.BookingDate), byID(b.ID, a.ID))
	}), nil
}

func (r bookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r bookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(b); err != nil {
		return err
	}
	b.ID = r.s.nextID()
	b.BookingDate = r.s.now()
	r.s.bookings[b.ID] = *b
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.check(b); err != nil {
		return err
	}
	b.BookingDate = current.BookingDate
	r.s.bookings[b.ID] = *b
	return nil
}

func (r bookingRepo) check(b *domain.Booking) error {
	if _, ok := r.s.flights[b.FlightID]; !ok {
		return invalidReference("flight_id")
	}
	if _, ok := r.s.passengers[b.PassengerID]; !ok {
		return invalidReference("passenger_id")
	}
	if !b.TravelClass.Valid() {
		return domain.ErrInvalidChoice
	}
	if !b.Status.Valid() {
		return domain.ErrInvalidChoice
	}
	return nil
}

func (r bookingRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum domain.DeleteSummary
	if _, ok := r.s.bookings[id]; !ok {
		return sum, domain.ErrNotFound
	}
	r.s.deleteBookingsWhere(func(b domain.Booking) bool { return b.ID == id }, &sum)
	return sum, nil
}

type ticketRepo struct{ s *Store }

func (r ticketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.tickets, func(a, b domain.Ticket) int {
		return cmp.Or(b.IssueDate.Compare(a.IssueDate), byID(b.ID, a.ID))
	}), nil
}

func (r ticketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r ticketRepo) Create(_ context.Context, t *domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(t); err != nil {
		return err
	}
	t.ID = r.s.nextID()
	t.IssueDate = r.s.now()
	r.s.tickets[t.ID] = *t
	return nil
}

func (r ticketRepo) Update(_ context.Context, t *domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.tickets[t.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.check(t); err != nil {
		return err
	}
	t.IssueDate = current.IssueDate
	r.s.tickets[t.ID] = *t
	return nil
}

// check enforces the one-to-one link with bookings and the unique number.
func (r ticketRepo) check(t *domain.Ticket) error {
	if _, ok := r.s.bookings[t.BookingID]; !ok {
		return invalidReference("booking_id")
	}
	for _, other := range r.s.tickets {
		if other.ID == t.ID {
			continue
		}
		if other.BookingID == t.BookingID {
			return alreadyExists("booking_id")
		}
		if other.TicketNumber == t.TicketNumber {
			return alreadyExists("ticket_number")
		}
	}
	return nil
}

func (r ticketRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[id]; !ok {
		return domain.DeleteSummary{}, domain.ErrNotFound
	}
	delete(r.s.tickets, id)
	return domain.DeleteSummary{Tickets: 1}, nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.payments, func(a, b domain.Payment) int {
		return cmp.Or(b.PaymentDate.Compare(a.PaymentDate), byID(b.ID, a.ID))
	}), nil
}

func (r paymentRepo) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r paymentRepo) Create(_ context.Context, p *domain.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(p); err != nil {
		return err
	}
	p.ID = r.s.nextID()
	p.PaymentDate = r.s.now()
	r.s.payments[p.ID] = *p
	return nil
}

func (r paymentRepo) Update(_ context.Context, p *domain.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.payments[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.check(p); err != nil {
		return err
	}
	p.PaymentDate = current.PaymentDate
	r.s.payments[p.ID] = *p
	return nil
}

func (r paymentRepo) check(p *domain.Payment) error {
	if _, ok := r.s.bookings[p.BookingID]; !ok {
		return invalidReference("booking_id")
	}
	if !p.Method.Valid() || !p.Status.Valid() {
		return domain.ErrInvalidChoice
	}
	if !p.Amount.Valid() {
		return domain.ErrValidation
	}
	return nil
}

func (r paymentRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[id]; !ok {
		return domain.DeleteSummary{}, domain.ErrNotFound
	}
	delete(r.s.payments, id)
	return domain.DeleteSummary{Payments: 1}, nil
}

var (
	_ repository.PassengerRepository = passengerRepo{}
	_ repository.BookingRepository   = bookingRepo{}
	_ repository.TicketRepository    = ticketRepo{}
	_ repository.PaymentRepository   = paymentRepo{}
)
