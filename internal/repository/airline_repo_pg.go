package repository

import (
	"context"

	"github.com/tinnkaaa/booking-system/internal/domain"
)

const airlineColumns = `id, name, code, country`

type PGAirlineRepository struct {
	db DB
}

func NewAirlineRepository(db DB) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

func (r *PGAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airlines ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		var a domain.Airline
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.Country); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (r *PGAirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE id=$1`, id)
	var a domain.Airline
	if err := row.Scan(&a.ID, &a.Name, &a.Code, &a.Country); err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

func (r *PGAirlineRepository) Create(ctx context.Context, a *domain.Airline) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airlines (name, code, country) VALUES ($1, $2, $3) RETURNING id`,
		a.Name, a.Code, a.Country).Scan(&a.ID)
	return translateError(err)
}

func (r *PGAirlineRepository) Update(ctx context.Context, a *domain.Airline) error {
	tag, err := r.db.Exec(ctx, `UPDATE airlines SET name=$1, code=$2, country=$3 WHERE id=$4`,
		a.Name, a.Code, a.Country, a.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirlineRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	const bookings = `flight_id IN (SELECT id FROM flights WHERE airline_id = $1)`
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{deleteTicketsOf(bookings), &s.Tickets},
		{deletePaymentsOf(bookings), &s.Payments},
		{`DELETE FROM bookings WHERE ` + bookings, &s.Bookings},
		{`DELETE FROM flights WHERE airline_id = $1`, &s.Flights},
		{`DELETE FROM airlines WHERE id = $1`, &s.Airlines},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
