package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/migrations"
	"go.uber.org/zap"
)

// DB is the part of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// NewPGStore wires every PostgreSQL repository to the same pool.
func NewPGStore(db DB) *Store {
	return &Store{
		Airports:   NewAirportRepository(db),
		Airlines:   NewAirlineRepository(db),
		Flights:    NewFlightRepository(db),
		Passengers: NewPassengerRepository(db),
		Bookings:   NewBookingRepository(db),
		Tickets:    NewTicketRepository(db),
		Payments:   NewPaymentRepository(db),
	}
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(zap.NewStdLog(log))
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info("database schema migrated", zap.Int64("version", version))
	return nil
}

var constraintFields = map[string]string{
	"airports_code_key":              "code",
	"airlines_code_key":              "code",
	"flights_flight_number_key":      "flight_number",
	"passengers_passport_number_key": "passport_number",
	"tickets_booking_id_key":         "booking_id",
	"tickets_ticket_number_key":      "ticket_number",
}

// translateError maps pgx and PostgreSQL errors onto the domain sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return fmt.Errorf("%s: %w", field, domain.ErrAlreadyExists)
	case "23503":
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrInvalidReference)
	case "23514":
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrInvalidChoice)
	case "22001", "22003":
		return fmt.Errorf("%s: %w", pgErr.Message, domain.ErrValidation)
	}
	return err
}

type cascadeStep struct {
	query   string
	deleted *int64
}

// deleteCascade runs the steps in one transaction. The last step deletes
// the parent row; if it matches nothing the whole delete is rolled back.
func deleteCascade(ctx context.Context, db DB, id int64, steps []cascadeStep) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, step := range steps {
		tag, err := tx.Exec(ctx, step.query, id)
		if err != nil {
			return translateError(err)
		}
		*step.deleted = tag.RowsAffected()
		if i == len(steps)-1 && tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
	}

	return tx.Commit(ctx)
}

// Dependents of a set of bookings, selected by a WHERE clause over bookings.
func deleteTicketsOf(bookingsWhere string) string {
	return `DELETE FROM tickets WHERE booking_id IN (SELECT id FROM bookings WHERE ` + bookingsWhere + `)`
}

func deletePaymentsOf(bookingsWhere string) string {
	return `DELETE FROM payments WHERE booking_id IN (SELECT id FROM bookings WHERE ` + bookingsWhere + `)`
}
