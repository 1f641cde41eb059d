package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type MySQLSupplierRepository struct {
	db *sql.DB
}

func NewMySQLSupplierRepository(db *sql.DB) *MySQLSupplierRepository {
	return &MySQLSupplierRepository{db: db}
}

func (r *MySQLSupplierRepository) FindAll(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT id, code, label, category FROM suppliers`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Code, &s.Label, &s.Category); err != nil {
			return nil, fmt.Errorf("scanning supplier row: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating supplier rows: %w", err)
	}

	return suppliers, nil
}

func (r *MySQLSupplierRepository) FindByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `SELECT id, code, label, category FROM suppliers WHERE id = ?`

	var s domain.Supplier
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Code, &s.Label, &s.Category)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("supplier with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying supplier by id: %w", err)
	}

	detail, err := r.findDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Detail = detail

	return &s, nil
}

func (r *MySQLSupplierRepository) findDetail(ctx context.Context, supplierID int64) (*domain.SupplierDetail, error) {
	query := `
		SELECT id, supplier_id, address, email, registration_number, collaboration_date
		FROM supplier_details
		WHERE supplier_id = ?
	`

	var d domain.SupplierDetail
	err := r.db.QueryRowContext(ctx, query, supplierID).Scan(
		&d.ID, &d.SupplierID, &d.Address, &d.Email, &d.RegistrationNumber, &d.CollaborationDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying supplier detail: %w", err)
	}

	return &d, nil
}

// Insert stores the supplier and, when present, its one-to-one detail record
// in a single transaction.
func (r *MySQLSupplierRepository) Insert(ctx context.Context, s domain.Supplier) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO suppliers (code, label, category) VALUES (?, ?, ?)`,
		s.Code, s.Label, s.Category,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting supplier: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted supplier id: %w", err)
	}

	if s.Detail != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO supplier_details (supplier_id, address, email, registration_number, collaboration_date)
			 VALUES (?, ?, ?, ?, ?)`,
			id, s.Detail.Address, s.Detail.Email, s.Detail.RegistrationNumber, s.Detail.CollaborationDate,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting supplier detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing supplier insert: %w", err)
	}

	return id, nil
}

// Update rewrites the supplier row and upserts the detail record.
func (r *MySQLSupplierRepository) Update(ctx context.Context, s domain.Supplier) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE suppliers SET code = ?, label = ?, category = ? WHERE id = ?`,
		s.Code, s.Label, s.Category, s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating supplier: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("supplier with id %d not found", s.ID))
	}

	if s.Detail != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO supplier_details (supplier_id, address, email, registration_number, collaboration_date)
			 VALUES (?, ?, ?, ?, ?)
			 ON DUPLICATE KEY UPDATE
			 address = VALUES(address), email = VALUES(email),
			 registration_number = VALUES(registration_number),
			 collaboration_date = VALUES(collaboration_date)`,
			s.ID, s.Detail.Address, s.Detail.Email, s.Detail.RegistrationNumber, s.Detail.CollaborationDate,
		)
		if err != nil {
			return fmt.Errorf("upserting supplier detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing supplier update: %w", err)
	}

	return nil
}

func (r *MySQLSupplierRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	return nil
}
