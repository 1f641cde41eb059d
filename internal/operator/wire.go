package operator

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/operator/controller"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/operator/repository"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/operator/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLOperatorRepository(db)
	svc := service.NewOperatorService(repo, logger)
	return controller.NewController(svc, logger)
}
