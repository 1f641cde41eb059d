package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/dto"
)

type mockPaymentService struct {
	ListPaymentsFunc       func(ctx context.Context) ([]domain.Payment, error)
	AddPaymentFunc         func(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	GetPaymentFunc         func(ctx context.Context, id int64) (*domain.Payment, error)
	PaymentsForInvoiceFunc func(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
	TotalPaidBetweenFunc   func(ctx context.Context, start, end time.Time) (float64, error)
}

func (m *mockPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return m.ListPaymentsFunc(ctx)
}

func (m *mockPaymentService) AddPayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	return m.AddPaymentFunc(ctx, p)
}

func (m *mockPaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return m.GetPaymentFunc(ctx, id)
}

func (m *mockPaymentService) PaymentsForInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return m.PaymentsForInvoiceFunc(ctx, invoiceID)
}

func (m *mockPaymentService) TotalPaidBetween(ctx context.Context, start, end time.Time) (float64, error) {
	return m.TotalPaidBetweenFunc(ctx, start, end)
}

func newRequestWithParams(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAddPayment_NegativeAmount_Returns400(t *testing.T) {
	c := NewController(&mockPaymentService{}, zap.NewNop())

	body := `{"amountPaid": -50.0, "amountRemaining": 0, "invoiceId": 1, "paymentDate": "2021-03-15T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/reglement/add-reglement", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.AddPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amountPaid must be non-negative")
}

func TestAddPayment_MissingInvoiceID_Returns400(t *testing.T) {
	c := NewController(&mockPaymentService{}, zap.NewNop())

	body := `{"amountPaid": 50.0, "amountRemaining": 0, "paymentDate": "2021-03-15T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/reglement/add-reglement", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.AddPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invoiceId is required")
}

func TestAddPayment_Valid_PassesAmountsThrough(t *testing.T) {
	var captured domain.Payment
	svc := &mockPaymentService{
		AddPaymentFunc: func(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
			captured = p
			p.ID = 3
			return &p, nil
		},
	}
	c := NewController(svc, zap.NewNop())

	body := `{"amountPaid": 300.0, "amountRemaining": 900.0, "paidInFull": false, "invoiceId": 12, "paymentDate": "2021-03-15T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/reglement/add-reglement", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.AddPayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 300.0, captured.AmountPaid)
	assert.Equal(t, 900.0, captured.AmountRemaining)
	assert.Equal(t, int64(12), captured.InvoiceID)

	var resp dto.PaymentDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
}

func TestGetPayment_Unknown_Returns200EmptyBody(t *testing.T) {
	svc := &mockPaymentService{
		GetPaymentFunc: func(ctx context.Context, id int64) (*domain.Payment, error) {
			return nil, nil
		},
	}
	c := NewController(svc, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/reglement/retrieve-reglement/404", map[string]string{"id": "404"})
	rec := httptest.NewRecorder()

	c.GetPayment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTotalPaidBetween_BadDate_Returns400(t *testing.T) {
	c := NewController(&mockPaymentService{}, zap.NewNop())

	req := newRequestWithParams(http.MethodGet, "/reglement/getChiffreAffaireEntreDeuxDate/bad/2021-12-31",
		map[string]string{"start": "bad", "end": "2021-12-31"})
	rec := httptest.NewRecorder()

	c.TotalPaidBetween(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
