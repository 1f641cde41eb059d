package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/invoice"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/operator"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/payment"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/product"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/stock"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/supplier"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	paymentCtrl, paymentSvc := payment.NewModule(db, logger)
	invoiceCtrl := invoice.NewModule(db, paymentSvc, logger)
	stockCtrl, _ := stock.NewModule(db, logger)
	supplierCtrl := supplier.NewModule(db, logger)
	productCtrl := product.NewModule(db, logger)
	operatorCtrl := operator.NewModule(db, logger)

	router := NewRouter(
		invoiceCtrl, paymentCtrl, stockCtrl,
		supplierCtrl, productCtrl, operatorCtrl,
		logger,
	)
	return router, mock
}

// Route paths are a published contract; clients of the system this service
// replaces must keep working unchanged.

func TestRouter_PeriodRevenueRoute(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_paid\), 0\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1000.0))

	req := httptest.NewRequest(http.MethodGet, "/reglement/getChiffreAffaireEntreDeuxDate/2024-01-01/2024-12-31", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1000\n", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_RecoveryPercentageRoute(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(10000.0))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_paid\), 0\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(7500.0))

	req := httptest.NewRequest(http.MethodGet, "/facture/pourcentageRecouvrement/2024-01-01/2024-12-31", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "75\n", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Welcome(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"application":"Achat E-Commerce Application"`)
	assert.Contains(t, rec.Body.String(), "/facture/retrieve-all-factures")
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/actuator/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"UP"}`, rec.Body.String())
}
