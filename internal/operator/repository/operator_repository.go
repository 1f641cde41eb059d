package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type MySQLOperatorRepository struct {
	db *sql.DB
}

func NewMySQLOperatorRepository(db *sql.DB) *MySQLOperatorRepository {
	return &MySQLOperatorRepository{db: db}
}

func (r *MySQLOperatorRepository) FindAll(ctx context.Context) ([]domain.Operator, error) {
	query := `SELECT id, first_name, last_name, password FROM operators`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying operators: %w", err)
	}
	defer rows.Close()

	var operators []domain.Operator
	for rows.Next() {
		var op domain.Operator
		if err := rows.Scan(&op.ID, &op.FirstName, &op.LastName, &op.Password); err != nil {
			return nil, fmt.Errorf("scanning operator row: %w", err)
		}
		operators = append(operators, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operator rows: %w", err)
	}

	return operators, nil
}

func (r *MySQLOperatorRepository) FindByID(ctx context.Context, id int64) (*domain.Operator, error) {
	query := `SELECT id, first_name, last_name, password FROM operators WHERE id = ?`

	var op domain.Operator
	err := r.db.QueryRowContext(ctx, query, id).Scan(&op.ID, &op.FirstName, &op.LastName, &op.Password)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("operator with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying operator by id: %w", err)
	}

	return &op, nil
}

func (r *MySQLOperatorRepository) Insert(ctx context.Context, op domain.Operator) (int64, error) {
	query := `INSERT INTO operators (first_name, last_name, password) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, op.FirstName, op.LastName, op.Password)
	if err != nil {
		return 0, fmt.Errorf("inserting operator: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted operator id: %w", err)
	}

	return id, nil
}

func (r *MySQLOperatorRepository) Update(ctx context.Context, op domain.Operator) error {
	query := `UPDATE operators SET first_name = ?, last_name = ?, password = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, op.FirstName, op.LastName, op.Password, op.ID)
	if err != nil {
		return fmt.Errorf("updating operator: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("operator with id %d not found", op.ID))
	}

	return nil
}

func (r *MySQLOperatorRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM operators WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting operator: %w", err)
	}
	return nil
}
