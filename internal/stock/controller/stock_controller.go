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

type StockService interface {
	ListStocks(ctx context.Context) ([]domain.Stock, error)
	GetStock(ctx context.Context, id int64) (*domain.Stock, error)
	AddStock(ctx context.Context, st domain.Stock) (*domain.Stock, error)
	UpdateStock(ctx context.Context, st domain.Stock) (*domain.Stock, error)
	DeleteStock(ctx context.Context, id int64) error
	ListLowStocks(ctx context.Context) ([]domain.Stock, error)
	LowStockReport(ctx context.Context) (string, error)
}

type Controller struct {
	service StockService
	logger  *zap.Logger
}

func NewController(service StockService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := c.service.ListStocks(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toStockDTOs(stocks))
}

func (c *Controller) GetStock(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	st, err := c.service.GetStock(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	if st == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	c.writeJSON(w, http.StatusOK, toStockDTO(*st))
}

func (c *Controller) AddStock(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeStock(w, r)
	if !ok {
		return
	}

	created, err := c.service.AddStock(r.Context(), domain.Stock{
		Label:       req.Label,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
	})
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toStockDTO(*created))
}

func (c *Controller) UpdateStock(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeStock(w, r)
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

	updated, err := c.service.UpdateStock(r.Context(), domain.Stock{
		ID:          req.ID,
		Label:       req.Label,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
	})
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toStockDTO(*updated))
}

func (c *Controller) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := c.service.DeleteStock(r.Context(), id); err != nil {
		c.writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) ListLowStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := c.service.ListLowStocks(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toStockDTOs(stocks))
}

func (c *Controller) StockStatusReport(w http.ResponseWriter, r *http.Request) {
	report, err := c.service.LowStockReport(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report)); err != nil {
		c.logger.Error("failed to write response", zap.Error(err))
	}
}

func (c *Controller) decodeStock(w http.ResponseWriter, r *http.Request) (dto.SaveStockRequest, bool) {
	var req dto.SaveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return req, false
	}

	var details []apperrors.ValidationDetail
	if req.Label == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "label",
			Message: "label is required",
		})
	}
	if req.Quantity < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be non-negative",
		})
	}
	if req.MinQuantity < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "minQuantity",
			Message: "minQuantity must be non-negative",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return req, false
	}

	return req, true
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

func toStockDTO(s domain.Stock) dto.StockDTO {
	return dto.StockDTO{
		ID:          s.ID,
		Label:       s.Label,
		Quantity:    s.Quantity,
		MinQuantity: s.MinQuantity,
		Low:         s.IsLow(),
	}
}

func toStockDTOs(stocks []domain.Stock) []dto.StockDTO {
	dtos := make([]dto.StockDTO, 0, len(stocks))
	for _, s := range stocks {
		dtos = append(dtos, toStockDTO(s))
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
