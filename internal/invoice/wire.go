package invoice

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/invoice/controller"
	invoicerepo "github.com/MedHabibManai/IGL5-G5-achat/internal/invoice/repository"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/invoice/service"
	operatorrepo "github.com/MedHabibManai/IGL5-G5-achat/internal/operator/repository"
	paymentsvc "github.com/MedHabibManai/IGL5-G5-achat/internal/payment/service"
)

func NewModule(db *sql.DB, payments *paymentsvc.PaymentService, logger *zap.Logger) *controller.Controller {
	repo := invoicerepo.NewMySQLInvoiceRepository(db)
	operators := operatorrepo.NewMySQLOperatorRepository(db)
	svc := service.NewInvoiceService(repo, operators, payments, logger)
	return controller.NewController(svc, logger)
}
