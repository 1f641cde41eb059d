package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type StockRepository interface {
	FindAll(ctx context.Context) ([]domain.Stock, error)
	FindByID(ctx context.Context, id int64) (*domain.Stock, error)
	Insert(ctx context.Context, s domain.Stock) (int64, error)
	Update(ctx context.Context, s domain.Stock) error
	Delete(ctx context.Context, id int64) error
	FindLow(ctx context.Context) ([]domain.Stock, error)
}

type StockService struct {
	repo   StockRepository
	logger *zap.Logger
}

func NewStockService(repo StockRepository, logger *zap.Logger) *StockService {
	return &StockService{
		repo:   repo,
		logger: logger,
	}
}

func (s *StockService) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	return s.repo.FindAll(ctx)
}

// GetStock returns nil without error when the id is unknown.
func (s *StockService) GetStock(ctx context.Context, id int64) (*domain.Stock, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}
	return st, nil
}

func (s *StockService) AddStock(ctx context.Context, st domain.Stock) (*domain.Stock, error) {
	id, err := s.repo.Insert(ctx, st)
	if err != nil {
		return nil, err
	}
	st.ID = id

	s.logger.Info("stock created", zap.Int64("stockId", id), zap.String("label", st.Label))
	return &st, nil
}

func (s *StockService) UpdateStock(ctx context.Context, st domain.Stock) (*domain.Stock, error) {
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *StockService) DeleteStock(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListLowStocks returns every stock with a quantity strictly below its minimum
// threshold. A stock sitting exactly at the threshold is not low.
func (s *StockService) ListLowStocks(ctx context.Context) ([]domain.Stock, error) {
	return s.repo.FindLow(ctx)
}

// LowStockReport renders one human-readable line per low stock. No low stock
// yields the empty string.
func (s *StockService) LowStockReport(ctx context.Context) (string, error) {
	lowStocks, err := s.repo.FindLow(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, st := range lowStocks {
		fmt.Fprintf(&b, "the stock %s has a quantity of %d below the minimum threshold of %d\n",
			st.Label, st.Quantity, st.MinQuantity)
	}

	return b.String(), nil
}

// RunLowStockAlerts periodically logs the low-stock report until the context is
// cancelled. The original system ran this as a scheduled status check.
func (s *StockService) RunLowStockAlerts(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := s.LowStockReport(ctx)
			if err != nil {
				s.logger.Error("low stock check failed", zap.Error(err))
				continue
			}
			if report != "" {
				s.logger.Warn("stocks below minimum threshold", zap.String("report", report))
			}
		}
	}
}
