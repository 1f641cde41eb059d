package domain

import "time"

// Payment reduces the open balance of exactly one invoice. AmountRemaining is
// set by the caller at creation time; the register never recomputes it.
type Payment struct {
	ID              int64
	AmountPaid      float64
	AmountRemaining float64
	PaidInFull      bool
	PaymentDate     time.Time
	InvoiceID       int64
}
