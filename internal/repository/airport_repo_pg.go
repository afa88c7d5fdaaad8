package repository

import (
	"context"

	"github.com/tinnkaaa/booking-system/internal/domain"
)

const airportColumns = `id, code, name, city, country`

type PGAirportRepository struct {
	db DB
}

func NewAirportRepository(db DB) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airportColumns+` FROM airports ORDER BY city, code, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports WHERE id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country); err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (code, name, city, country) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Code, a.Name, a.City, a.Country).Scan(&a.ID)
	return translateError(err)
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	tag, err := r.db.Exec(ctx, `UPDATE airports SET code=$1, name=$2, city=$3, country=$4 WHERE id=$5`,
		a.Code, a.Name, a.City, a.Country, a.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the airport together with every flight departing from or
// arriving at it, and those flights' bookings, tickets and payments.
func (r *PGAirportRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	const bookings = `flight_id IN (SELECT id FROM flights WHERE departure_airport_id = $1 OR arrival_airport_id = $1)`
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{deleteTicketsOf(bookings), &s.Tickets},
		{deletePaymentsOf(bookings), &s.Payments},
		{`DELETE FROM bookings WHERE ` + bookings, &s.Bookings},
		{`DELETE FROM flights WHERE departure_airport_id = $1 OR arrival_airport_id = $1`, &s.Flights},
		{`DELETE FROM airports WHERE id = $1`, &s.Airports},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
