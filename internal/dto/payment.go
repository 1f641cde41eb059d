package dto

import "time"

type PaymentDTO struct {
	ID              int64     `json:"id"`
	AmountPaid      float64   `json:"amountPaid"`
	AmountRemaining float64   `json:"amountRemaining"`
	PaidInFull      bool      `json:"paidInFull"`
	PaymentDate     time.Time `json:"paymentDate"`
	InvoiceID       int64     `json:"invoiceId"`
}

type AddPaymentRequest struct {
	AmountPaid      float64   `json:"amountPaid"`
	AmountRemaining float64   `json:"amountRemaining"`
	PaidInFull      bool      `json:"paidInFull"`
	PaymentDate     time.Time `json:"paymentDate"`
	InvoiceID       int64     `json:"invoiceId"`
}
