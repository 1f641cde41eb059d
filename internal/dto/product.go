package dto

import "time"

type ProductDTO struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	UnitPrice float64   `json:"unitPrice"`
	StockID   *int64    `json:"stockId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SaveProductRequest struct {
	ID        int64   `json:"id"`
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unitPrice"`
	StockID   *int64  `json:"stockId"`
}
