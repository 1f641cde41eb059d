package payment

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/payment/controller"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/payment/repository"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/payment/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*controller.Controller, *service.PaymentService) {
	repo := repository.NewMySQLPaymentRepository(db)
	svc := service.NewPaymentService(repo, logger)
	return controller.NewController(svc, logger), svc
}
