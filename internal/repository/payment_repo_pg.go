package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

const paymentColumns = `id, booking_id, payment_date, (amount * 100)::bigint, method, status`

type PGPaymentRepository struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.BookingID, &p.PaymentDate, (*int64)(&p.Amount), (*string)(&p.Method), (*string)(&p.Status))
	return p, err
}

func (r *PGPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY payment_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PGPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PGPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	err := r.db.QueryRow(ctx, `INSERT INTO payments (booking_id, amount, method, status)
		VALUES ($1, $2::numeric / 100, $3, $4)
		RETURNING id, payment_date`,
		p.BookingID, int64(p.Amount), string(p.Method), string(p.Status)).Scan(&p.ID, &p.PaymentDate)
	return translateError(err)
}

func (r *PGPaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	err := r.db.QueryRow(ctx, `UPDATE payments SET booking_id=$1, amount=$2::numeric / 100, method=$3, status=$4
		WHERE id=$5
		RETURNING payment_date`,
		p.BookingID, int64(p.Amount), string(p.Method), string(p.Status), p.ID).Scan(&p.PaymentDate)
	return translateError(err)
}

func (r *PGPaymentRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	var s domain.DeleteSummary
	err := deleteCascade(ctx, r.db, id, []cascadeStep{
		{`DELETE FROM payments WHERE id = $1`, &s.Payments},
	})
	if err != nil {
		return domain.DeleteSummary{}, err
	}
	return s, nil
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
