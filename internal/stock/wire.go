package stock

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/stock/controller"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/stock/repository"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/stock/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*controller.Controller, *service.StockService) {
	repo := repository.NewMySQLStockRepository(db)
	svc := service.NewStockService(repo, logger)
	return controller.NewController(svc, logger), svc
}
