package dto

import "time"

type InvoiceDTO struct {
	ID         int64            `json:"id"`
	Amount     float64          `json:"amount"`
	Discount   float64          `json:"discount"`
	Archived   bool             `json:"archived"`
	SupplierID *int64           `json:"supplierId"`
	OperatorID *int64           `json:"operatorId"`
	Lines      []InvoiceLineDTO `json:"lines,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

type InvoiceLineDTO struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"productId"`
	Quantity       int     `json:"quantity"`
	DiscountRate   float64 `json:"discountRate"`
	DiscountAmount float64 `json:"discountAmount"`
	LineTotal      float64 `json:"lineTotal"`
}

type AddInvoiceRequest struct {
	Amount     float64                 `json:"amount"`
	Discount   float64                 `json:"discount"`
	SupplierID *int64                  `json:"supplierId"`
	Lines      []AddInvoiceLineRequest `json:"lines"`
}

type AddInvoiceLineRequest struct {
	ProductID      int64   `json:"productId"`
	Quantity       int     `json:"quantity"`
	DiscountRate   float64 `json:"discountRate"`
	DiscountAmount float64 `json:"discountAmount"`
	LineTotal      float64 `json:"lineTotal"`
}
