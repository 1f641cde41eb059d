package dto

import "time"

type SupplierDTO struct {
	ID       int64              `json:"id"`
	Code     string             `json:"code"`
	Label    string             `json:"label"`
	Category string             `json:"category"`
	Detail   *SupplierDetailDTO `json:"detail,omitempty"`
}

type SupplierDetailDTO struct {
	Address            string    `json:"address"`
	Email              string    `json:"email"`
	RegistrationNumber string    `json:"registrationNumber"`
	CollaborationDate  time.Time `json:"collaborationDate"`
}

type SaveSupplierRequest struct {
	ID       int64              `json:"id"`
	Code     string             `json:"code"`
	Label    string             `json:"label"`
	Category string             `json:"category"`
	Detail   *SupplierDetailDTO `json:"detail"`
}
