package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type MySQLStockRepository struct {
	db *sql.DB
}

func NewMySQLStockRepository(db *sql.DB) *MySQLStockRepository {
	return &MySQLStockRepository{db: db}
}

func (r *MySQLStockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	query := `SELECT id, label, quantity, min_quantity FROM stocks`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stocks: %w", err)
	}
	defer rows.Close()

	return collectStocks(rows)
}

func (r *MySQLStockRepository) FindByID(ctx context.Context, id int64) (*domain.Stock, error) {
	query := `SELECT id, label, quantity, min_quantity FROM stocks WHERE id = ?`

	var s domain.Stock
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Label, &s.Quantity, &s.MinQuantity)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("stock with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying stock by id: %w", err)
	}

	return &s, nil
}

func (r *MySQLStockRepository) Insert(ctx context.Context, s domain.Stock) (int64, error) {
	query := `INSERT INTO stocks (label, quantity, min_quantity) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, s.Label, s.Quantity, s.MinQuantity)
	if err != nil {
		return 0, fmt.Errorf("inserting stock: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted stock id: %w", err)
	}

	return id, nil
}

func (r *MySQLStockRepository) Update(ctx context.Context, s domain.Stock) error {
	query := `UPDATE stocks SET label = ?, quantity = ?, min_quantity = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, s.Label, s.Quantity, s.MinQuantity, s.ID)
	if err != nil {
		return fmt.Errorf("updating stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("stock with id %d not found", s.ID))
	}

	return nil
}

func (r *MySQLStockRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM stocks WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting stock: %w", err)
	}

	return nil
}

// FindLow returns every stock strictly below its minimum threshold, in storage
// order.
func (r *MySQLStockRepository) FindLow(ctx context.Context) ([]domain.Stock, error) {
	query := `SELECT id, label, quantity, min_quantity FROM stocks WHERE quantity < min_quantity`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying low stocks: %w", err)
	}
	defer rows.Close()

	return collectStocks(rows)
}

func collectStocks(rows *sql.Rows) ([]domain.Stock, error) {
	var stocks []domain.Stock
	for rows.Next() {
		var s domain.Stock
		if err := rows.Scan(&s.ID, &s.Label, &s.Quantity, &s.MinQuantity); err != nil {
			return nil, fmt.Errorf("scanning stock row: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock rows: %w", err)
	}

	return stocks, nil
}
