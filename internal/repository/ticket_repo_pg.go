package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

const ticketColumns = `id, booking_id, ticket_number, issue_date, is_active`

type PGTicketRepository struct {
	db DB
}

func NewTicketRepository(db DB) TicketRepository {
	return &PGTicketRepository{db: db}
}

func scanTicket(row pgx.Row) (domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.ID, &t.BookingID, &t.TicketNumber, &t.IssueDate, &t.IsActive)
	return t, err
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY issue_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	t, err := scanTicket(r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

// Create fails with ErrAlreadyExists when the booking already has a ticket
// (tickets_booking_id_key) or the number is taken.
func (r *PGTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	err := r.db.QueryRow(ctx, `INSERT INTO tickets (booking_id, ticket_number, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, issue_date`,
		t.BookingID, t.TicketNumber, t.IsActive).Scan(&t.ID, &t.IssueDate)
	return translateError(err)
}

func (r *PGTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	err := r.db.QueryRow(ctx, `UPDATE tickets SET booking_id=$1, ticket_number=$2, is_active=$3
		WHERE id=$4
		RETURNING issue_date`,
		t.BookingID, t.TicketNumber, t.IsActive, t.ID).Scan(&t.IssueDate)
	return translateError(err)
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{`DELETE FROM tickets WHERE id = $1`, &s.Tickets},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
