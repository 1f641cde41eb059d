package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Run loads a small sample data set, mirroring the fixture loader of the
// system this service replaces. It only touches an empty database; the rest
// of the service behaves identically with or without it.
func Run(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		logger.Info("database already contains data, skipping seed")
		return nil
	}

	logger.Info("seeding database with sample data")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stockRes, err := tx.ExecContext(ctx,
		`INSERT INTO stocks (label, quantity, min_quantity) VALUES (?, ?, ?), (?, ?, ?)`,
		"central warehouse", 120, 30,
		"overflow depot", 10, 25,
	)
	if err != nil {
		return fmt.Errorf("seeding stocks: %w", err)
	}
	stockID, err := stockRes.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting seeded stock id: %w", err)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO products (code, label, unit_price, stock_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)`,
		"P001", "office chair", 149.90, stockID, now, now,
		"P002", "standing desk", 389.00, stockID, now, now,
	)
	if err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	supplierRes, err := tx.ExecContext(ctx,
		`INSERT INTO suppliers (code, label, category) VALUES (?, ?, ?)`,
		"F001", "Mobilier Express", "CONTRACTED",
	)
	if err != nil {
		return fmt.Errorf("seeding suppliers: %w", err)
	}
	supplierID, err := supplierRes.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting seeded supplier id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO supplier_details (supplier_id, address, email, registration_number, collaboration_date)
		 VALUES (?, ?, ?, ?, ?)`,
		supplierID, "12 rue de la Liberté, Tunis", "contact@mobilier-express.tn", "MF-1234567", now,
	)
	if err != nil {
		return fmt.Errorf("seeding supplier details: %w", err)
	}

	opRes, err := tx.ExecContext(ctx,
		`INSERT INTO operators (first_name, last_name, password) VALUES (?, ?, ?)`,
		"Rayen", "Slouma", "changeme",
	)
	if err != nil {
		return fmt.Errorf("seeding operators: %w", err)
	}
	operatorID, err := opRes.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting seeded operator id: %w", err)
	}

	invRes, err := tx.ExecContext(ctx,
		`INSERT INTO invoices (amount, discount, archived, supplier_id, operator_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		1000.0, 100.0, false, supplierID, operatorID, now, now,
	)
	if err != nil {
		return fmt.Errorf("seeding invoices: %w", err)
	}
	invoiceID, err := invRes.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting seeded invoice id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payments (amount_paid, amount_remaining, paid_in_full, payment_date, invoice_id)
		 VALUES (?, ?, ?, ?, ?)`,
		500.0, 500.0, false, now, invoiceID,
	)
	if err != nil {
		return fmt.Errorf("seeding payments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	logger.Info("database seed complete")
	return nil
}
