package domain

import "time"

// SupplierCategory classifies a supplier's contractual relationship.
type SupplierCategory string

const (
	SupplierCategoryOrdinary   SupplierCategory = "ORDINARY"
	SupplierCategoryContracted SupplierCategory = "CONTRACTED"
)

type Supplier struct {
	ID       int64
	Code     string
	Label    string
	Category SupplierCategory
	Detail   *SupplierDetail
}

// SupplierDetail holds the one-to-one administrative record of a supplier.
type SupplierDetail struct {
	ID                 int64
	SupplierID         int64
	Address            string
	Email              string
	RegistrationNumber string
	CollaborationDate  time.Time
}
