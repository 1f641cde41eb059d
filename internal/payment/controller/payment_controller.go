package controller

import (
	"context"
	"encoding/json"
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

type PaymentService interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	AddPayment(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	PaymentsForInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
	TotalPaidBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type Controller struct {
	service PaymentService
	logger  *zap.Logger
}

func NewController(service PaymentService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := c.service.ListPayments(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

func (c *Controller) AddPayment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateAddPayment(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	created, err := c.service.AddPayment(r.Context(), domain.Payment{
		AmountPaid:      req.AmountPaid,
		AmountRemaining: req.AmountRemaining,
		PaidInFull:      req.PaidInFull,
		PaymentDate:     req.PaymentDate,
		InvoiceID:       req.InvoiceID,
	})
	if err != nil {
		logger.Error("add payment failed", zap.Error(err))
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toPaymentDTO(*created))
}

func (c *Controller) validateAddPayment(req dto.AddPaymentRequest) error {
	var details []apperrors.ValidationDetail

	if req.AmountPaid < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "amountPaid",
			Message: "amountPaid must be non-negative",
		})
	}

	if req.InvoiceID <= 0 {
		msg := "invoiceId must be a positive integer"
		if req.InvoiceID == 0 {
			msg = "invoiceId is required"
		}
		details = append(details, apperrors.ValidationDetail{
			Field:   "invoiceId",
			Message: msg,
		})
	}

	if req.PaymentDate.IsZero() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "paymentDate",
			Message: "paymentDate is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *Controller) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	p, err := c.service.GetPayment(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	if p == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	c.writeJSON(w, http.StatusOK, toPaymentDTO(*p))
}

func (c *Controller) PaymentsForInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	payments, err := c.service.PaymentsForInvoice(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

func (c *Controller) TotalPaidBetween(w http.ResponseWriter, r *http.Request) {
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

	total, err := c.service.TotalPaidBetween(r.Context(), start, end)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, total)
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

func toPaymentDTO(p domain.Payment) dto.PaymentDTO {
	return dto.PaymentDTO{
		ID:              p.ID,
		AmountPaid:      p.AmountPaid,
		AmountRemaining: p.AmountRemaining,
		PaidInFull:      p.PaidInFull,
		PaymentDate:     p.PaymentDate,
		InvoiceID:       p.InvoiceID,
	}
}

func toPaymentDTOs(payments []domain.Payment) []dto.PaymentDTO {
	dtos := make([]dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, toPaymentDTO(p))
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
