package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type MySQLPaymentRepository struct {
	db *sql.DB
}

func NewMySQLPaymentRepository(db *sql.DB) *MySQLPaymentRepository {
	return &MySQLPaymentRepository{db: db}
}

const paymentColumns = `id, amount_paid, amount_remaining, paid_in_full, payment_date, invoice_id`

func (r *MySQLPaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *MySQLPaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`

	var p domain.Payment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.AmountPaid, &p.AmountRemaining, &p.PaidInFull, &p.PaymentDate, &p.InvoiceID,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("payment with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying payment by id: %w", err)
	}

	return &p, nil
}

func (r *MySQLPaymentRepository) Insert(ctx context.Context, p domain.Payment) (int64, error) {
	query := `
		INSERT INTO payments (amount_paid, amount_remaining, paid_in_full, payment_date, invoice_id)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.AmountPaid, p.AmountRemaining, p.PaidInFull, p.PaymentDate, p.InvoiceID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting payment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted payment id: %w", err)
	}

	return id, nil
}

func (r *MySQLPaymentRepository) FindByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = ?`

	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("querying payments by invoice: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// TotalBetween sums payments dated in [start, end]. COALESCE turns the NULL
// aggregate over zero rows into 0.
func (r *MySQLPaymentRepository) TotalBetween(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM payments
		WHERE payment_date BETWEEN ? AND ?
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing payments between dates: %w", err)
	}

	return total, nil
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.AmountPaid, &p.AmountRemaining, &p.PaidInFull, &p.PaymentDate, &p.InvoiceID)
		if err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}
