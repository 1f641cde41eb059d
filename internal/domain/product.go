package domain

import "time"

// Product is a catalog article. Code is the business key; the unit price and
// label are mutable, products are never implicitly deleted.
type Product struct {
	ID        int64
	Code      string
	Label     string
	UnitPrice float64
	StockID   *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
