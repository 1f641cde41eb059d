package controller

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
)

type mockInvoiceService struct {
	ListInvoicesFunc       func(ctx context.Context) ([]domain.Invoice, error)
	GetInvoiceFunc         func(ctx context.Context, id int64) (*domain.Invoice, error)
	AddInvoiceFunc         func(ctx context.Context, inv domain.Invoice) (*domain.Invoice, error)
	CancelInvoiceFunc      func(ctx context.Context, id int64) error
	AssignOperatorFunc     func(ctx context.Context, invoiceID, operatorID int64) error
	InvoicesBySupplierFunc func(ctx context.Context, supplierID int64) ([]domain.Invoice, error)
	RecoveryPercentageFunc func(ctx context.Context, start, end time.Time) (float64, error)
}

func (m *mockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return m.ListInvoicesFunc(ctx)
}

func (m *mockInvoiceService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return m.GetInvoiceFunc(ctx, id)
}

func (m *mockInvoiceService) AddInvoice(ctx context.Context, inv domain.Invoice) (*domain.Invoice, error) {
	return m.AddInvoiceFunc(ctx, inv)
}

func (m *mockInvoiceService) CancelInvoice(ctx context.Context, id int64) error {
	return m.CancelInvoiceFunc(ctx, id)
}

func (m *mockInvoiceService) AssignOperator(ctx context.Context, invoiceID, operatorID int64) error {
	return m.AssignOperatorFunc(ctx, invoiceID, operatorID)
}

func (m *mockInvoiceService) InvoicesBySupplier(ctx context.Context, supplierID int64) ([]domain.Invoice, error) {
	return m.InvoicesBySupplierFunc(ctx, supplierID)
}

func (m *mockInvoiceService) RecoveryPercentage(ctx context.Context, start, end time.Time) (float64, error) {
	return m.RecoveryPercentageFunc(ctx, start, end)
}

func newRequestWithParams(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetInvoice_Unknown_Returns200EmptyBody(t *testing.T) {
	svc := &mockInvoiceService{
		GetInvoiceFunc: func(ctx context.Context, id int64) (*domain.Invoice, error) {
			return nil, nil
		},
	}
	c := NewController(svc, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/facture/retrieve-facture/404", map[string]string{"id": "404"})
	rec := httptest.NewRecorder()

	c.GetInvoice(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetInvoice_InvalidID_Returns400(t *testing.T) {
	c := NewController(&mockInvoiceService{}, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/facture/retrieve-facture/abc", map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()

	c.GetInvoice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCancelInvoice_UnknownID_Returns200(t *testing.T) {
	svc := &mockInvoiceService{
		CancelInvoiceFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	c := NewController(svc, zap.NewNop())

	req := newRequestWithParams(http.MethodPut, "/facture/cancel-facture/9999", map[string]string{"id": "9999"})
	rec := httptest.NewRecorder()

	c.CancelInvoice(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddInvoice_InvalidJSON_Returns400(t *testing.T) {
	c := NewController(&mockInvoiceService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/facture/add-facture", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	c.AddInvoice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestListInvoices_ServiceError_Returns500WrappedInternalError(t *testing.T) {
	svc := &mockInvoiceService{
		ListInvoicesFunc: func(ctx context.Context) ([]domain.Invoice, error) {
			return nil, errors.New("connection reset")
		},
	}

	core, logs := observer.New(zap.ErrorLevel)
	c := NewController(svc, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/facture/retrieve-all-factures", nil)
	rec := httptest.NewRecorder()

	c.ListInvoices(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")

	entries := logs.All()
	require.Len(t, entries, 1)
	logged, ok := entries[0].ContextMap()["error"]
	require.True(t, ok)
	assert.Contains(t, logged.(string), "an unexpected error occurred")
	assert.Contains(t, logged.(string), "connection reset")
}

func TestRecoveryPercentage_BadStartDate_Returns400(t *testing.T) {
	c := NewController(&mockInvoiceService{}, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/facture/pourcentageRecouvrement/not-a-date/2021-12-31",
		map[string]string{"start": "not-a-date", "end": "2021-12-31"})
	rec := httptest.NewRecorder()

	c.RecoveryPercentage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRecoveryPercentage_ServiceError_FailsSoftToZero(t *testing.T) {
	svc := &mockInvoiceService{
		RecoveryPercentageFunc: func(ctx context.Context, start, end time.Time) (float64, error) {
			return 0, errors.New("database unavailable")
		},
	}
	c := NewController(svc, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/facture/pourcentageRecouvrement/2021-01-01/2021-12-31",
		map[string]string{"start": "2021-01-01", "end": "2021-12-31"})
	rec := httptest.NewRecorder()

	c.RecoveryPercentage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0\n", rec.Body.String())
}

func TestRecoveryPercentage_Nominal_ReturnsJSONNumber(t *testing.T) {
	svc := &mockInvoiceService{
		RecoveryPercentageFunc: func(ctx context.Context, start, end time.Time) (float64, error) {
			return 75.0, nil
		},
	}
	c := NewController(svc, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/facture/pourcentageRecouvrement/2021-01-01/2021-12-31",
		map[string]string{"start": "2021-01-01", "end": "2021-12-31"})
	rec := httptest.NewRecorder()

	c.RecoveryPercentage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "75\n", rec.Body.String())
}

func TestRecoveryPercentage_ZeroDenominator_ReturnsPlainTextNaN(t *testing.T) {
	svc := &mockInvoiceService{
		RecoveryPercentageFunc: func(ctx context.Context, start, end time.Time) (float64, error) {
			return math.NaN(), nil
		},
	}
	c := NewController(svc, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/facture/pourcentageRecouvrement/2021-01-01/2021-12-31",
		map[string]string{"start": "2021-01-01", "end": "2021-12-31"})
	rec := httptest.NewRecorder()

	c.RecoveryPercentage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "NaN", rec.Body.String())
}
