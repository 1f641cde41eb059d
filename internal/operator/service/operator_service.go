package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type OperatorRepository interface {
	FindAll(ctx context.Context) ([]domain.Operator, error)
	FindByID(ctx context.Context, id int64) (*domain.Operator, error)
	Insert(ctx context.Context, op domain.Operator) (int64, error)
	Update(ctx context.Context, op domain.Operator) error
	Delete(ctx context.Context, id int64) error
}

type OperatorService struct {
	repo   OperatorRepository
	logger *zap.Logger
}

func NewOperatorService(repo OperatorRepository, logger *zap.Logger) *OperatorService {
	return &OperatorService{
		repo:   repo,
		logger: logger,
	}
}

func (s *OperatorService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return s.repo.FindAll(ctx)
}

// GetOperator returns nil without error when the id is unknown.
func (s *OperatorService) GetOperator(ctx context.Context, id int64) (*domain.Operator, error) {
	op, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}
	return op, nil
}

func (s *OperatorService) AddOperator(ctx context.Context, op domain.Operator) (*domain.Operator, error) {
	id, err := s.repo.Insert(ctx, op)
	if err != nil {
		return nil, err
	}
	op.ID = id

	s.logger.Info("operator created", zap.Int64("operatorId", id))
	return &op, nil
}

func (s *OperatorService) UpdateOperator(ctx context.Context, op domain.Operator) (*domain.Operator, error) {
	if err := s.repo.Update(ctx, op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (s *OperatorService) DeleteOperator(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
