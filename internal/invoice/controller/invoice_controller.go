package controller

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/dto"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

const dateLayout = "2006-01-02"

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	AddInvoice(ctx context.Context, inv domain.Invoice) (*domain.Invoice, error)
	CancelInvoice(ctx context.Context, id int64) error
	AssignOperator(ctx context.Context, invoiceID, operatorID int64) error
	InvoicesBySupplier(ctx context.Context, supplierID int64) ([]domain.Invoice, error)
	RecoveryPercentage(ctx context.Context, start, end time.Time) (float64, error)
}

type Controller struct {
	service InvoiceService
	logger  *zap.Logger
}

func NewController(service InvoiceService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := c.service.ListInvoices(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toInvoiceDTOs(invoices))
}

func (c *Controller) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	inv, err := c.service.GetInvoice(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	// Unknown ids answer 200 with an empty body, kept for compatibility with
	// the historical contract.
	if inv == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	c.writeJSON(w, http.StatusOK, toInvoiceDTO(*inv))
}

func (c *Controller) AddInvoice(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	inv := domain.Invoice{
		Amount:     req.Amount,
		Discount:   req.Discount,
		SupplierID: req.SupplierID,
	}
	for _, line := range req.Lines {
		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			DiscountRate:   line.DiscountRate,
			DiscountAmount: line.DiscountAmount,
			LineTotal:      line.LineTotal,
		})
	}

	created, err := c.service.AddInvoice(r.Context(), inv)
	if err != nil {
		logger.Error("add invoice failed", zap.Error(err))
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toInvoiceDTO(*created))
}

func (c *Controller) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := c.service.CancelInvoice(r.Context(), id); err != nil {
		c.writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) InvoicesBySupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	invoices, err := c.service.InvoicesBySupplier(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toInvoiceDTOs(invoices))
}

func (c *Controller) AssignOperator(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := c.parseID(w, "invoiceId", chi.URLParam(r, "invoiceId"))
	if !ok {
		return
	}
	operatorID, ok := c.parseID(w, "operatorId", chi.URLParam(r, "operatorId"))
	if !ok {
		return
	}

	err := c.service.AssignOperator(r.Context(), invoiceID, operatorID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			// Lookup misses stay a 200 with empty body, same as the other
			// absent-entity responses.
			c.logger.Warn("assign operator on missing entity",
				zap.Int64("invoiceId", invoiceID), zap.Int64("operatorId", operatorID))
			w.WriteHeader(http.StatusOK)
			return
		}
		c.writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// RecoveryPercentage is the one endpoint with fail-soft behavior: any failure
// below the date parsing degrades to a 0.0 success response.
func (c *Controller) RecoveryPercentage(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(dateLayout, chi.URLParam(r, "start"))
	if err != nil {
		c.writeValidationError(w, "invalid start date", apperrors.ValidationDetail{
			Field:   "start",
			Message: "start must be a date formatted as YYYY-MM-DD",
		})
		return
	}

	end, err := time.Parse(dateLayout, chi.URLParam(r, "end"))
	if err != nil {
		c.writeValidationError(w, "invalid end date", apperrors.ValidationDetail{
			Field:   "end",
			Message: "end must be a date formatted as YYYY-MM-DD",
		})
		return
	}

	rate, err := c.service.RecoveryPercentage(r.Context(), start, end)
	if err != nil {
		c.logger.Error("recovery percentage computation failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, 0.0)
		return
	}

	c.writeRecoveryValue(w, rate)
}

// writeRecoveryValue renders the percentage. NaN and ±Inf are legal outcomes of
// a zero denominator but not legal JSON, so they go out as plain text.
func (c *Controller) writeRecoveryValue(w http.ResponseWriter, rate float64) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(strconv.FormatFloat(rate, 'f', -1, 64))); err != nil {
			c.logger.Error("failed to write response", zap.Error(err))
		}
		return
	}

	c.writeJSON(w, http.StatusOK, rate)
}

func (c *Controller) parseID(w http.ResponseWriter, field, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid "+field, apperrors.ValidationDetail{
			Field:   field,
			Message: field + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func toInvoiceDTO(inv domain.Invoice) dto.InvoiceDTO {
	d := dto.InvoiceDTO{
		ID:         inv.ID,
		Amount:     inv.Amount,
		Discount:   inv.Discount,
		Archived:   inv.Archived,
		SupplierID: inv.SupplierID,
		OperatorID: inv.OperatorID,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
	for _, line := range inv.Lines {
		d.Lines = append(d.Lines, dto.InvoiceLineDTO{
			ID:             line.ID,
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			DiscountRate:   line.DiscountRate,
			DiscountAmount: line.DiscountAmount,
			LineTotal:      line.LineTotal,
		})
	}
	return d
}

func toInvoiceDTOs(invoices []domain.Invoice) []dto.InvoiceDTO {
	dtos := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		dtos = append(dtos, toInvoiceDTO(inv))
	}
	return dtos
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
