package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

const bookingColumns = `id, flight_id, passenger_id, booking_date, seat_number, travel_class, status`

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.FlightID, &b.PassengerID, &b.BookingDate, &b.SeatNumber,
		(*string)(&b.TravelClass), (*string)(&b.Status))
	return b, err
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY booking_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (flight_id, passenger_id, seat_number, travel_class, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booking_date`,
		b.FlightID, b.PassengerID, b.SeatNumber, string(b.TravelClass), string(b.Status)).
		Scan(&b.ID, &b.BookingDate)
	return translateError(err)
}

// Update leaves booking_date untouched and reloads it into b.
func (r *PGBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	err := r.db.QueryRow(ctx, `UPDATE bookings SET flight_id=$1, passenger_id=$2, seat_number=$3, travel_class=$4, status=$5
		WHERE id=$6
		RETURNING booking_date`,
		b.FlightID, b.PassengerID, b.SeatNumber, string(b.TravelClass), string(b.Status), b.ID).
		Scan(&b.BookingDate)
	return translateError(err)
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{`DELETE FROM tickets WHERE booking_id = $1`, &s.Tickets},
		{`DELETE FROM payments WHERE booking_id = $1`, &s.Payments},
		{`DELETE FROM bookings WHERE id = $1`, &s.Bookings},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
