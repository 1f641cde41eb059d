package product

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/product/controller"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/product/repository"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/product/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLProductRepository(db)
	svc := service.NewProductService(repo, logger)
	return controller.NewController(svc, logger)
}
