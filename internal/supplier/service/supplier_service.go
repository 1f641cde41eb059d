package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type SupplierRepository interface {
	FindAll(ctx context.Context) ([]domain.Supplier, error)
	FindByID(ctx context.Context, id int64) (*domain.Supplier, error)
	Insert(ctx context.Context, s domain.Supplier) (int64, error)
	Update(ctx context.Context, s domain.Supplier) error
	Delete(ctx context.Context, id int64) error
}

type SupplierService struct {
	repo   SupplierRepository
	logger *zap.Logger
}

func NewSupplierService(repo SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.FindAll(ctx)
}

// GetSupplier returns nil without error when the id is unknown.
func (s *SupplierService) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}
	return sup, nil
}

func (s *SupplierService) AddSupplier(ctx context.Context, sup domain.Supplier) (*domain.Supplier, error) {
	if sup.Category == "" {
		sup.Category = domain.SupplierCategoryOrdinary
	}

	id, err := s.repo.Insert(ctx, sup)
	if err != nil {
		return nil, err
	}
	sup.ID = id

	s.logger.Info("supplier created", zap.Int64("supplierId", id), zap.String("code", sup.Code))
	return &sup, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, sup domain.Supplier) (*domain.Supplier, error) {
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
