package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type mockStockRepository struct {
	FindAllFunc  func(ctx context.Context) ([]domain.Stock, error)
	FindByIDFunc func(ctx context.Context, id int64) (*domain.Stock, error)
	InsertFunc   func(ctx context.Context, s domain.Stock) (int64, error)
	UpdateFunc   func(ctx context.Context, s domain.Stock) error
	DeleteFunc   func(ctx context.Context, id int64) error
	FindLowFunc  func(ctx context.Context) ([]domain.Stock, error)
}

func (m *mockStockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockStockRepository) FindByID(ctx context.Context, id int64) (*domain.Stock, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockStockRepository) Insert(ctx context.Context, s domain.Stock) (int64, error) {
	return m.InsertFunc(ctx, s)
}

func (m *mockStockRepository) Update(ctx context.Context, s domain.Stock) error {
	return m.UpdateFunc(ctx, s)
}

func (m *mockStockRepository) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockStockRepository) FindLow(ctx context.Context) ([]domain.Stock, error) {
	return m.FindLowFunc(ctx)
}

func TestGetStock_Unknown_ReturnsNilWithoutError(t *testing.T) {
	repo := &mockStockRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Stock, error) {
			return nil, apperrors.NewNotFoundError("stock not found")
		},
	}

	svc := NewStockService(repo, zap.NewNop())

	st, err := svc.GetStock(context.Background(), 404)
	if err != nil {
		t.Fatalf("expected nil error for unknown id, got %v", err)
	}
	if st != nil {
		t.Errorf("expected nil stock for unknown id, got %+v", st)
	}
}

func TestLowStockReport_FormatsOneLinePerStock(t *testing.T) {
	repo := &mockStockRepository{
		FindLowFunc: func(ctx context.Context) ([]domain.Stock, error) {
			return []domain.Stock{
				{ID: 1, Label: "stock central", Quantity: 4, MinQuantity: 10},
				{ID: 2, Label: "stock annexe", Quantity: 0, MinQuantity: 5},
			}, nil
		},
	}

	svc := NewStockService(repo, zap.NewNop())

	report, err := svc.LowStockReport(context.Background())
	if err != nil {
		t.Fatalf("LowStockReport returned error: %v", err)
	}

	want1 := "the stock stock central has a quantity of 4 below the minimum threshold of 10\n"
	want2 := "the stock stock annexe has a quantity of 0 below the minimum threshold of 5\n"
	if !strings.Contains(report, want1) {
		t.Errorf("report missing line %q, got %q", want1, report)
	}
	if !strings.Contains(report, want2) {
		t.Errorf("report missing line %q, got %q", want2, report)
	}
	if lines := strings.Count(report, "\n"); lines != 2 {
		t.Errorf("expected 2 report lines, got %d", lines)
	}
}

func TestLowStockReport_EmptyWhenNothingLow(t *testing.T) {
	repo := &mockStockRepository{
		FindLowFunc: func(ctx context.Context) ([]domain.Stock, error) {
			return nil, nil
		},
	}

	svc := NewStockService(repo, zap.NewNop())

	report, err := svc.LowStockReport(context.Background())
	if err != nil {
		t.Fatalf("LowStockReport returned error: %v", err)
	}
	if report != "" {
		t.Errorf("expected empty report, got %q", report)
	}
}
