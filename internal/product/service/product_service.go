package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type ProductService struct {
	repo   ProductRepository
	logger *zap.Logger
}

func NewProductService(repo ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProduct returns nil without error when the id is unknown.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	s.logger.Info("product created", zap.Int64("productId", id), zap.String("code", p.Code))
	return &p, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	return &p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
