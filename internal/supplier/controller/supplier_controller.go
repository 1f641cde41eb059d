package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/dto"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type SupplierService interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	AddSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

type Controller struct {
	service SupplierService
	logger  *zap.Logger
}

func NewController(service SupplierService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := c.service.ListSuppliers(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	dtos := make([]dto.SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		dtos = append(dtos, toSupplierDTO(s))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	s, err := c.service.GetSupplier(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	if s == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	c.writeJSON(w, http.StatusOK, toSupplierDTO(*s))
}

func (c *Controller) AddSupplier(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeSupplier(w, r)
	if !ok {
		return
	}

	created, err := c.service.AddSupplier(r.Context(), toSupplierDomain(req))
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toSupplierDTO(*created))
}

func (c *Controller) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeSupplier(w, r)
	if !ok {
		return
	}

	if req.ID <= 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	updated, err := c.service.UpdateSupplier(r.Context(), toSupplierDomain(req))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toSupplierDTO(*updated))
}

func (c *Controller) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := c.service.DeleteSupplier(r.Context(), id); err != nil {
		c.writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) decodeSupplier(w http.ResponseWriter, r *http.Request) (dto.SaveSupplierRequest, bool) {
	var req dto.SaveSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return req, false
	}

	var details []apperrors.ValidationDetail
	if req.Code == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "code",
			Message: "code is required",
		})
	}
	if req.Label == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "label",
			Message: "label is required",
		})
	}
	switch domain.SupplierCategory(req.Category) {
	case "", domain.SupplierCategoryOrdinary, domain.SupplierCategoryContracted:
	default:
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be ORDINARY or CONTRACTED",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return req, false
	}

	return req, true
}

func toSupplierDomain(req dto.SaveSupplierRequest) domain.Supplier {
	s := domain.Supplier{
		ID:       req.ID,
		Code:     req.Code,
		Label:    req.Label,
		Category: domain.SupplierCategory(req.Category),
	}
	if req.Detail != nil {
		s.Detail = &domain.SupplierDetail{
			SupplierID:         req.ID,
			Address:            req.Detail.Address,
			Email:              req.Detail.Email,
			RegistrationNumber: req.Detail.RegistrationNumber,
			CollaborationDate:  req.Detail.CollaborationDate,
		}
	}
	return s
}

func toSupplierDTO(s domain.Supplier) dto.SupplierDTO {
	d := dto.SupplierDTO{
		ID:       s.ID,
		Code:     s.Code,
		Label:    s.Label,
		Category: string(s.Category),
	}
	if s.Detail != nil {
		d.Detail = &dto.SupplierDetailDTO{
			Address:            s.Detail.Address,
			Email:              s.Detail.Email,
			RegistrationNumber: s.Detail.RegistrationNumber,
			CollaborationDate:  s.Detail.CollaborationDate,
		}
	}
	return d
}

func (c *Controller) parseID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeInternalError(w http.ResponseWriter, err error) {
	ie := apperrors.NewInternalError("an unexpected error occurred", err)
	c.logger.Error("unexpected error", zap.Error(ie))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": ie.Message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
