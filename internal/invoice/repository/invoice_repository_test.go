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

func TestNewMySQLInvoiceRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLInvoiceRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestInvoiceRepository_FindByID_NotFound_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, amount, discount, archived, supplier_id, operator_id, created_at, updated_at FROM invoices WHERE id = ?`)).
		WithArgs(int64(9999)).
		WillReturnError(sql.ErrNoRows)

	repo := NewMySQLInvoiceRepository(db)

	inv, err := repo.FindByID(context.Background(), 9999)
	assert.Nil(t, inv)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Archive_UnknownID_Succeeds_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE invoices SET archived = 1, updated_at = ? WHERE id = ?`)).
		WithArgs(sqlmock.AnyArg(), int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewMySQLInvoiceRepository(db)

	// Zero rows affected is not an error.
	err = repo.Archive(context.Background(), 9999)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_TotalBetween_EmptyPeriod_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(amount), 0)"}).AddRow(0.0))

	repo := NewMySQLInvoiceRepository(db)

	total, err := repo.TotalBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Integration Tests

func TestInvoiceRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	result, err := db.Exec(`
		INSERT INTO invoices (amount, discount, archived, created_at, updated_at)
		VALUES (1500.0, 100.0, 0, NOW(), NOW())
	`)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)

	inv, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, inv)
	assert.Equal(t, id, inv.ID)
	assert.Equal(t, 1500.0, inv.Amount)
	assert.Equal(t, 100.0, inv.Discount)
	assert.False(t, inv.Archived)
	assert.Nil(t, inv.SupplierID)
	assert.Nil(t, inv.OperatorID)
}

func TestInvoiceRepository_Archive_ExcludesFromTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	result, err := db.Exec(`
		INSERT INTO invoices (amount, discount, archived, created_at, updated_at)
		VALUES (2000.0, 0, 0, '2021-06-15', '2021-06-15')
	`)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)

	total, err := repo.TotalBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, total)

	require.NoError(t, repo.Archive(context.Background(), id))

	total, err = repo.TotalBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	// Archiving again is a no-op.
	require.NoError(t, repo.Archive(context.Background(), id))
}

func TestInvoiceRepository_FindBySupplier_StableOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	result, err := db.Exec(`INSERT INTO suppliers (code, label, category) VALUES ('S01', 'fournisseur test', 'ORDINARY')`)
	require.NoError(t, err)
	supplierID, err := result.LastInsertId()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := db.Exec(`
			INSERT INTO invoices (amount, discount, archived, supplier_id, created_at, updated_at)
			VALUES (100.0, 0, 0, ?, NOW(), NOW())
		`, supplierID)
		require.NoError(t, err)
	}

	invoices, err := repo.FindBySupplier(context.Background(), supplierID)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.True(t, invoices[0].ID < invoices[1].ID)
	assert.True(t, invoices[1].ID < invoices[2].ID)
}
