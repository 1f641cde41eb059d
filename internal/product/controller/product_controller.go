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

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type Controller struct {
	service ProductService
	logger  *zap.Logger
}

func NewController(service ProductService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	dtos := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	p, err := c.service.GetProduct(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	if p == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductDTO(*p))
}

func (c *Controller) AddProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeProduct(w, r)
	if !ok {
		return
	}

	created, err := c.service.AddProduct(r.Context(), domain.Product{
		Code:      req.Code,
		Label:     req.Label,
		UnitPrice: req.UnitPrice,
		StockID:   req.StockID,
	})
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductDTO(*created))
}

func (c *Controller) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeProduct(w, r)
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

	updated, err := c.service.UpdateProduct(r.Context(), domain.Product{
		ID:        req.ID,
		Code:      req.Code,
		Label:     req.Label,
		UnitPrice: req.UnitPrice,
		StockID:   req.StockID,
	})
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductDTO(*updated))
}

func (c *Controller) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := c.service.DeleteProduct(r.Context(), id); err != nil {
		c.writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) decodeProduct(w http.ResponseWriter, r *http.Request) (dto.SaveProductRequest, bool) {
	var req dto.SaveProductRequest
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
	if req.UnitPrice < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "unitPrice",
			Message: "unitPrice must be non-negative",
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

func toProductDTO(p domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:        p.ID,
		Code:      p.Code,
		Label:     p.Label,
		UnitPrice: p.UnitPrice,
		StockID:   p.StockID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
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
