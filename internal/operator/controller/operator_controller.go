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

type OperatorService interface {
	ListOperators(ctx context.Context) ([]domain.Operator, error)
	GetOperator(ctx context.Context, id int64) (*domain.Operator, error)
	AddOperator(ctx context.Context, op domain.Operator) (*domain.Operator, error)
	UpdateOperator(ctx context.Context, op domain.Operator) (*domain.Operator, error)
	DeleteOperator(ctx context.Context, id int64) error
}

type Controller struct {
	service OperatorService
	logger  *zap.Logger
}

func NewController(service OperatorService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) ListOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := c.service.ListOperators(r.Context())
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	dtos := make([]dto.OperatorDTO, 0, len(operators))
	for _, op := range operators {
		dtos = append(dtos, toOperatorDTO(op))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) GetOperator(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	op, err := c.service.GetOperator(r.Context(), id)
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	if op == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	c.writeJSON(w, http.StatusOK, toOperatorDTO(*op))
}

func (c *Controller) AddOperator(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeOperator(w, r)
	if !ok {
		return
	}

	created, err := c.service.AddOperator(r.Context(), domain.Operator{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toOperatorDTO(*created))
}

func (c *Controller) UpdateOperator(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeOperator(w, r)
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

	updated, err := c.service.UpdateOperator(r.Context(), domain.Operator{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		c.writeInternalError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toOperatorDTO(*updated))
}

func (c *Controller) DeleteOperator(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := c.service.DeleteOperator(r.Context(), id); err != nil {
		c.writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) decodeOperator(w http.ResponseWriter, r *http.Request) (dto.SaveOperatorRequest, bool) {
	var req dto.SaveOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return req, false
	}

	var details []apperrors.ValidationDetail
	if req.FirstName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}
	if req.LastName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lastName",
			Message: "lastName is required",
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

func toOperatorDTO(op domain.Operator) dto.OperatorDTO {
	return dto.OperatorDTO{
		ID:        op.ID,
		FirstName: op.FirstName,
		LastName:  op.LastName,
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
