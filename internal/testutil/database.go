package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/infrastructure/mysql"
)

// SetupTestDB opens the local test database, skipping the test when no MySQL
// instance is reachable. Expects a database named 'achat_test' on
// localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/achat_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables creates the service schema in the test database.
func SetupTestTables(t *testing.T, db *sql.DB) {
	if err := mysql.EnsureSchema(db); err != nil {
		t.Fatalf("failed to create test tables: %v", err)
	}
}

// CleanupTestDB empties the test tables and closes the connection. Children
// are deleted before their parents to satisfy foreign keys.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"payments", "invoice_lines", "invoices",
		"supplier_details", "suppliers",
		"products", "stocks", "operators",
	}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}
