package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

const flightColumns = `id, flight_number, airline_id, departure_airport_id, arrival_airport_id, departure_time, arrival_time, aircraft_type, (price * 100)::bigint`

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.DepartureAirportID, &f.ArrivalAirportID,
		&f.DepartureTime, &f.ArrivalTime, &f.AircraftType, (*int64)(&f.Price))
	return f, err
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline_id, departure_airport_id, arrival_airport_id, departure_time, arrival_time, aircraft_type, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric / 100)
		RETURNING id`,
		f.FlightNumber, f.AirlineID, f.DepartureAirportID, f.ArrivalAirportID,
		f.DepartureTime, f.ArrivalTime, f.AircraftType, int64(f.Price)).Scan(&f.ID)
	return translateError(err)
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	tag, err := r.db.Exec(ctx, `UPDATE flights SET flight_number=$1, airline_id=$2, departure_airport_id=$3, arrival_airport_id=$4,
		departure_time=$5, arrival_time=$6, aircraft_type=$7, price=$8::numeric / 100
		WHERE id=$9`,
		f.FlightNumber, f.AirlineID, f.DepartureAirportID, f.ArrivalAirportID,
		f.DepartureTime, f.ArrivalTime, f.AircraftType, int64(f.Price), f.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	const bookings = `flight_id = $1`
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{deleteTicketsOf(bookings), &s.Tickets},
		{deletePaymentsOf(bookings), &s.Payments},
		{`DELETE FROM bookings WHERE ` + bookings, &s.Bookings},
		{`DELETE FROM flights WHERE id = $1`, &s.Flights},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
