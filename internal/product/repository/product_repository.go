package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, code, label, unit_price, stock_id, created_at, updated_at`

func (r *MySQLProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Code, &p.Label, &p.UnitPrice, &p.StockID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Code, &p.Label, &p.UnitPrice, &p.StockID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) (int64, error) {
	query := `
		INSERT INTO products (code, label, unit_price, stock_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Code, p.Label, p.UnitPrice, p.StockID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted product id: %w", err)
	}

	return id, nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, p domain.Product) error {
	query := `UPDATE products SET code = ?, label = ?, unit_price = ?, stock_id = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		p.Code, p.Label, p.UnitPrice, p.StockID, time.Now(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", p.ID))
	}

	return nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}
