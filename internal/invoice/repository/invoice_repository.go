package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type MySQLInvoiceRepository struct {
	db *sql.DB
}

func NewMySQLInvoiceRepository(db *sql.DB) *MySQLInvoiceRepository {
	return &MySQLInvoiceRepository{db: db}
}

const invoiceColumns = `id, amount, discount, archived, supplier_id, operator_id, created_at, updated_at`

func scanInvoice(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.ID, &inv.Amount, &inv.Discount, &inv.Archived,
		&inv.SupplierID, &inv.OperatorID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *MySQLInvoiceRepository) FindAll(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying invoices: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

func (r *MySQLInvoiceRepository) FindByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ?`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying invoice by id: %w", err)
	}

	return inv, nil
}

func (r *MySQLInvoiceRepository) Insert(ctx context.Context, inv domain.Invoice) (int64, error) {
	query := `
		INSERT INTO invoices (amount, discount, archived, supplier_id, operator_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		inv.Amount, inv.Discount, inv.Archived,
		inv.SupplierID, inv.OperatorID, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting invoice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted invoice id: %w", err)
	}

	return id, nil
}

func (r *MySQLInvoiceRepository) InsertLine(ctx context.Context, line domain.InvoiceLine) (int64, error) {
	query := `
		INSERT INTO invoice_lines (invoice_id, product_id, quantity, discount_rate, discount_amount, line_total)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		line.InvoiceID, line.ProductID, line.Quantity,
		line.DiscountRate, line.DiscountAmount, line.LineTotal,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting invoice line: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted invoice line id: %w", err)
	}

	return id, nil
}

func (r *MySQLInvoiceRepository) LinesByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, product_id, quantity, discount_rate, discount_amount, line_total
		FROM invoice_lines
		WHERE invoice_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("querying invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.InvoiceLine
	for rows.Next() {
		var l domain.InvoiceLine
		err := rows.Scan(&l.ID, &l.InvoiceID, &l.ProductID, &l.Quantity,
			&l.DiscountRate, &l.DiscountAmount, &l.LineTotal)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice line row: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice line rows: %w", err)
	}

	return lines, nil
}

// Archive marks the invoice archived in a single statement. Zero rows affected
// means the id never existed, which is still a success: cancellation is
// idempotent and never errors on unknown ids.
func (r *MySQLInvoiceRepository) Archive(ctx context.Context, id int64) error {
	query := `UPDATE invoices SET archived = 1, updated_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("archiving invoice: %w", err)
	}

	return nil
}

func (r *MySQLInvoiceRepository) AssignOperator(ctx context.Context, invoiceID, operatorID int64) error {
	query := `UPDATE invoices SET operator_id = ?, updated_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, operatorID, time.Now(), invoiceID); err != nil {
		return fmt.Errorf("assigning operator to invoice: %w", err)
	}

	return nil
}

// FindBySupplier returns the supplier's invoices ordered by id. The relation is
// unordered in the model; id order is the documented stable order for callers.
func (r *MySQLInvoiceRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE supplier_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("querying invoices by supplier: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// TotalBetween sums non-archived invoice amounts created in [start, end].
// COALESCE turns the NULL aggregate over zero rows into 0.
func (r *MySQLInvoiceRepository) TotalBetween(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM invoices
		WHERE archived = 0 AND created_at BETWEEN ? AND ?
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing invoices between dates: %w", err)
	}

	return total, nil
}

func collectInvoices(rows *sql.Rows) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}
