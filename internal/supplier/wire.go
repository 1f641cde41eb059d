package supplier

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/supplier/controller"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/supplier/repository"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/supplier/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLSupplierRepository(db)
	svc := service.NewSupplierService(repo, logger)
	return controller.NewController(svc, logger)
}
