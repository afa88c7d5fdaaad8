package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

const passengerColumns = `id, first_name, last_name, date_of_birth, passport_number, nationality, email, phone`

type PGPassengerRepository struct {
	db DB
}

func NewPassengerRepository(db DB) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func scanPassenger(row pgx.Row) (domain.Passenger, error) {
	var p domain.Passenger
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, (*time.Time)(&p.DateOfBirth), &p.PassportNumber, &p.Nationality, &p.Email, &p.Phone)
	return p, err
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers ORDER BY last_name, first_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	p, err := scanPassenger(r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, date_of_birth, passport_number, nationality, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		p.FirstName, p.LastName, p.DateOfBirth.Time(), p.PassportNumber, p.Nationality, p.Email, p.Phone).Scan(&p.ID)
	return translateError(err)
}

func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	tag, err := r.db.Exec(ctx, `UPDATE passengers SET first_name=$1, last_name=$2, date_of_birth=$3, passport_number=$4,
		nationality=$5, email=$6, phone=$7 WHERE id=$8`,
		p.FirstName, p.LastName, p.DateOfBirth.Time(), p.PassportNumber, p.Nationality, p.Email, p.Phone, p.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	const bookings = `passenger_id = $1`
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{deleteTicketsOf(bookings), &s.Tickets},
		{deletePaymentsOf(bookings), &s.Payments},
		{`DELETE FROM bookings WHERE ` + bookings, &s.Bookings},
		{`DELETE FROM passengers WHERE id = $1`, &s.Passengers},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
