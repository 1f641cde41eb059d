package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	invoicectrl "github.com/MedHabibManai/IGL5-G5-achat/internal/invoice/controller"
	operatorctrl "github.com/MedHabibManai/IGL5-G5-achat/internal/operator/controller"
	paymentctrl "github.com/MedHabibManai/IGL5-G5-achat/internal/payment/controller"
	productctrl "github.com/MedHabibManai/IGL5-G5-achat/internal/product/controller"
	stockctrl "github.com/MedHabibManai/IGL5-G5-achat/internal/stock/controller"
	supplierctrl "github.com/MedHabibManai/IGL5-G5-achat/internal/supplier/controller"
)

// NewRouter binds the historical REST surface. Path names are kept verbatim
// from the system this service replaces, French segments included.
func NewRouter(
	invoices *invoicectrl.Controller,
	payments *paymentctrl.Controller,
	stocks *stockctrl.Controller,
	suppliers *supplierctrl.Controller,
	products *productctrl.Controller,
	operators *operatorctrl.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/facture", func(r chi.Router) {
		r.Get("/retrieve-all-factures", invoices.ListInvoices)
		r.Get("/retrieve-facture/{id}", invoices.GetInvoice)
		r.Post("/add-facture", invoices.AddInvoice)
		r.Put("/cancel-facture/{id}", invoices.CancelInvoice)
		r.Get("/getFactureByFournisseur/{id}", invoices.InvoicesBySupplier)
		r.Put("/assignOperateurToFacture/{invoiceId}/{operatorId}", invoices.AssignOperator)
		r.Get("/pourcentageRecouvrement/{start}/{end}", invoices.RecoveryPercentage)
	})

	r.Route("/reglement", func(r chi.Router) {
		r.Get("/retrieve-all-reglements", payments.ListPayments)
		r.Get("/retrieve-reglement/{id}", payments.GetPayment)
		r.Post("/add-reglement", payments.AddPayment)
		r.Get("/retrieveReglementByFacture/{id}", payments.PaymentsForInvoice)
		r.Get("/getChiffreAffaireEntreDeuxDate/{start}/{end}", payments.TotalPaidBetween)
	})

	r.Route("/stock", func(r chi.Router) {
		r.Get("/retrieve-all-stocks", stocks.ListStocks)
		r.Get("/retrieve-stock/{id}", stocks.GetStock)
		r.Post("/add-stock", stocks.AddStock)
		r.Put("/modify-stock", stocks.UpdateStock)
		r.Delete("/remove-stock/{id}", stocks.DeleteStock)
		r.Get("/low", stocks.ListLowStocks)
		r.Get("/status-stock", stocks.StockStatusReport)
	})

	r.Route("/fournisseur", func(r chi.Router) {
		r.Get("/retrieve-all-fournisseurs", suppliers.ListSuppliers)
		r.Get("/retrieve-fournisseur/{id}", suppliers.GetSupplier)
		r.Post("/add-fournisseur", suppliers.AddSupplier)
		r.Put("/modify-fournisseur", suppliers.UpdateSupplier)
		r.Delete("/remove-fournisseur/{id}", suppliers.DeleteSupplier)
	})

	r.Route("/produit", func(r chi.Router) {
		r.Get("/retrieve-all-produits", products.ListProducts)
		r.Get("/retrieve-produit/{id}", products.GetProduct)
		r.Post("/add-produit", products.AddProduct)
		r.Put("/modify-produit", products.UpdateProduct)
		r.Delete("/remove-produit/{id}", products.DeleteProduct)
	})

	r.Route("/operateur", func(r chi.Router) {
		r.Get("/retrieve-all-operateurs", operators.ListOperators)
		r.Get("/retrieve-operateur/{id}", operators.GetOperator)
		r.Post("/add-operateur", operators.AddOperator)
		r.Put("/modify-operateur", operators.UpdateOperator)
		r.Delete("/remove-operateur/{id}", operators.DeleteOperator)
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		welcome := map[string]interface{}{
			"application": "Achat E-Commerce Application",
			"version":     "1.0",
			"status":      "UP",
			"endpoints": map[string]string{
				"Health Check": "/actuator/health",
				"Produits":     "/produit/retrieve-all-produits",
				"Stocks":       "/stock/retrieve-all-stocks",
				"Fournisseurs": "/fournisseur/retrieve-all-fournisseurs",
				"Factures":     "/facture/retrieve-all-factures",
				"Operateurs":   "/operateur/retrieve-all-operateurs",
				"Reglements":   "/reglement/retrieve-all-reglements",
			},
			"message": "Welcome to Achat API!",
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(welcome); err != nil {
			logger.Error("failed to write welcome response", zap.Error(err))
		}
	})

	r.Get("/actuator/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"UP"}`)); err != nil {
			logger.Error("failed to write health response", zap.Error(err))
		}
	})

	return r
}
