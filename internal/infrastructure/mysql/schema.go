package mysql

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []struct {
	name  string
	query string
}{
	{"stocks", `
	CREATE TABLE IF NOT EXISTS stocks (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		label VARCHAR(255) NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		min_quantity INT NOT NULL DEFAULT 0
	)`},
	{"products", `
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(100) NOT NULL UNIQUE,
		label VARCHAR(255) NOT NULL,
		unit_price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		stock_id BIGINT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (stock_id) REFERENCES stocks(id),
		INDEX idx_product_stock (stock_id)
	)`},
	{"suppliers", `
	CREATE TABLE IF NOT EXISTS suppliers (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(100) NOT NULL,
		label VARCHAR(255) NOT NULL,
		category VARCHAR(20) NOT NULL DEFAULT 'ORDINARY'
	)`},
	{"supplier_details", `
	CREATE TABLE IF NOT EXISTS supplier_details (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		supplier_id BIGINT NOT NULL UNIQUE,
		address VARCHAR(255),
		email VARCHAR(150),
		registration_number VARCHAR(100),
		collaboration_date DATETIME,
		FOREIGN KEY (supplier_id) REFERENCES suppliers(id) ON DELETE CASCADE
	)`},
	{"operators", `
	CREATE TABLE IF NOT EXISTS operators (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		password VARCHAR(255) NOT NULL
	)`},
	{"invoices", `
	CREATE TABLE IF NOT EXISTS invoices (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		discount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		archived TINYINT(1) NOT NULL DEFAULT 0,
		supplier_id BIGINT NULL,
		operator_id BIGINT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (supplier_id) REFERENCES suppliers(id),
		FOREIGN KEY (operator_id) REFERENCES operators(id),
		INDEX idx_invoice_supplier (supplier_id),
		INDEX idx_invoice_archived (archived),
		INDEX idx_invoice_created (created_at)
	)`},
	{"invoice_lines", `
	CREATE TABLE IF NOT EXISTS invoice_lines (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		invoice_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		discount_rate DECIMAL(5,2) NOT NULL DEFAULT 0.00,
		discount_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		line_total DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(id),
		INDEX idx_line_invoice (invoice_id)
	)`},
	{"payments", `
	CREATE TABLE IF NOT EXISTS payments (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		amount_paid DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		amount_remaining DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		paid_in_full TINYINT(1) NOT NULL DEFAULT 0,
		payment_date DATETIME NOT NULL,
		invoice_id BIGINT NOT NULL,
		FOREIGN KEY (invoice_id) REFERENCES invoices(id),
		INDEX idx_payment_invoice (invoice_id),
		INDEX idx_payment_date (payment_date)
	)`},
}

// EnsureSchema creates the tables the service needs when they do not exist.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt.query); err != nil {
			return fmt.Errorf("creating table %s: %w", stmt.name, err)
		}
	}
	return nil
}
