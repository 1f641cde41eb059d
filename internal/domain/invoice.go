package domain

import "time"

// Invoice is issued against a supplier delivery. Archival is one-way: an
// archived invoice is permanently excluded from revenue and recovery totals.
type Invoice struct {
	ID         int64
	Amount     float64
	Discount   float64
	Archived   bool
	SupplierID *int64
	OperatorID *int64
	Lines      []InvoiceLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceLine is one article position on an invoice.
type InvoiceLine struct {
	ID             int64
	InvoiceID      int64
	ProductID      int64
	Quantity       int
	DiscountRate   float64
	DiscountAmount float64
	LineTotal      float64
}
