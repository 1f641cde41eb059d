package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type PaymentRepository interface {
	FindAll(ctx context.Context) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	Insert(ctx context.Context, p domain.Payment) (int64, error)
	FindByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
	TotalBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type PaymentService struct {
	repo   PaymentRepository
	logger *zap.Logger
}

func NewPaymentService(repo PaymentRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.FindAll(ctx)
}

// AddPayment persists the payment as given. The remaining amount is caller
// supplied and never recomputed here.
func (s *PaymentService) AddPayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	s.logger.Info("payment recorded",
		zap.Int64("paymentId", id),
		zap.Int64("invoiceId", p.InvoiceID),
		zap.Float64("amountPaid", p.AmountPaid))

	return &p, nil
}

// GetPayment returns nil without error when the id is unknown.
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) PaymentsForInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return s.repo.FindByInvoice(ctx, invoiceID)
}

func (s *PaymentService) TotalPaidBetween(ctx context.Context, start, end time.Time) (float64, error) {
	return s.repo.TotalBetween(ctx, start, end)
}
