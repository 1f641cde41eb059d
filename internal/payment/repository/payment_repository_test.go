package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/testutil"
)

// Unit Tests

func TestNewMySQLPaymentRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLPaymentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestPaymentRepository_FindByID_NotFound_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, amount_paid, amount_remaining, paid_in_full, payment_date, invoice_id FROM payments WHERE id = ?`)).
		WithArgs(int64(9999)).
		WillReturnError(sql.ErrNoRows)

	repo := NewMySQLPaymentRepository(db)

	p, err := repo.FindByID(context.Background(), 9999)
	assert.Nil(t, p)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_TotalBetween_EmptyPeriod_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_paid\), 0\)`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(amount_paid), 0)"}).AddRow(0.0))

	repo := NewMySQLPaymentRepository(db)

	total, err := repo.TotalBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Integration Tests

func TestPaymentRepository_InsertAndFindByInvoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	result, err := db.Exec(`
		INSERT INTO invoices (amount, discount, archived, created_at, updated_at)
		VALUES (1200.0, 0, 0, NOW(), NOW())
	`)
	require.NoError(t, err)
	invoiceID, err := result.LastInsertId()
	require.NoError(t, err)

	repo := NewMySQLPaymentRepository(db)

	_, err = db.Exec(`
		INSERT INTO payments (amount_paid, amount_remaining, paid_in_full, payment_date, invoice_id)
		VALUES (400.0, 800.0, 0, '2021-03-15', ?)
	`, invoiceID)
	require.NoError(t, err)

	payments, err := repo.FindByInvoice(context.Background(), invoiceID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 400.0, payments[0].AmountPaid)
	assert.Equal(t, 800.0, payments[0].AmountRemaining)
	assert.False(t, payments[0].PaidInFull)
	assert.Equal(t, invoiceID, payments[0].InvoiceID)
}

func TestPaymentRepository_TotalBetween_BoundsInclusive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	result, err := db.Exec(`
		INSERT INTO invoices (amount, discount, archived, created_at, updated_at)
		VALUES (1000.0, 0, 0, NOW(), NOW())
	`)
	require.NoError(t, err)
	invoiceID, err := result.LastInsertId()
	require.NoError(t, err)

	dates := []string{"2021-01-01", "2021-06-15", "2021-12-31"}
	for _, d := range dates {
		_, err := db.Exec(`
			INSERT INTO payments (amount_paid, amount_remaining, paid_in_full, payment_date, invoice_id)
			VALUES (100.0, 0, 1, ?, ?)
		`, d, invoiceID)
		require.NoError(t, err)
	}

	repo := NewMySQLPaymentRepository(db)

	total, err := repo.TotalBetween(context.Background(),
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
}
