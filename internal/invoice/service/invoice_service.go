package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/domain"
	apperrors "github.com/MedHabibManai/IGL5-G5-achat/internal/errors"
)

type InvoiceRepository interface {
	FindAll(ctx context.Context) ([]domain.Invoice, error)
	FindByID(ctx context.Context, id int64) (*domain.Invoice, error)
	Insert(ctx context.Context, inv domain.Invoice) (int64, error)
	InsertLine(ctx context.Context, line domain.InvoiceLine) (int64, error)
	LinesByInvoice(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error)
	Archive(ctx context.Context, id int64) error
	AssignOperator(ctx context.Context, invoiceID, operatorID int64) error
	FindBySupplier(ctx context.Context, supplierID int64) ([]domain.Invoice, error)
	TotalBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type OperatorRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Operator, error)
}

// PaymentTotals is the slice of the payment register the ledger needs for
// recovery-rate computation.
type PaymentTotals interface {
	TotalPaidBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type InvoiceService struct {
	repo      InvoiceRepository
	operators OperatorRepository
	payments  PaymentTotals
	logger    *zap.Logger
}

func NewInvoiceService(
	repo InvoiceRepository,
	operators OperatorRepository,
	payments PaymentTotals,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		operators: operators,
		payments:  payments,
		logger:    logger,
	}
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.FindAll(ctx)
}

// GetInvoice returns nil without error when the id is unknown.
func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}

	lines, err := s.repo.LinesByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines

	return inv, nil
}

func (s *InvoiceService) AddInvoice(ctx context.Context, inv domain.Invoice) (*domain.Invoice, error) {
	now := time.Now()
	inv.Archived = false
	inv.CreatedAt = now
	inv.UpdatedAt = now

	id, err := s.repo.Insert(ctx, inv)
	if err != nil {
		return nil, err
	}
	inv.ID = id

	for i := range inv.Lines {
		inv.Lines[i].InvoiceID = id
		lineID, err := s.repo.InsertLine(ctx, inv.Lines[i])
		if err != nil {
			return nil, err
		}
		inv.Lines[i].ID = lineID
	}

	s.logger.Info("invoice created", zap.Int64("invoiceId", id), zap.Float64("amount", inv.Amount))

	return &inv, nil
}

// CancelInvoice archives the invoice. Unknown ids are not an error; a second
// call on an already archived invoice is a no-op.
func (s *InvoiceService) CancelInvoice(ctx context.Context, id int64) error {
	if err := s.repo.Archive(ctx, id); err != nil {
		return err
	}

	s.logger.Info("invoice cancelled", zap.Int64("invoiceId", id))
	return nil
}

// AssignOperator attaches the invoice to the operator. Both sides must exist;
// a miss on either returns a NotFoundError sentinel. Re-assigning the same
// operator has no additional effect.
func (s *InvoiceService) AssignOperator(ctx context.Context, invoiceID, operatorID int64) error {
	if _, err := s.repo.FindByID(ctx, invoiceID); err != nil {
		return err
	}
	if _, err := s.operators.FindByID(ctx, operatorID); err != nil {
		return err
	}

	if err := s.repo.AssignOperator(ctx, invoiceID, operatorID); err != nil {
		return err
	}

	s.logger.Info("operator assigned to invoice",
		zap.Int64("invoiceId", invoiceID), zap.Int64("operatorId", operatorID))
	return nil
}

func (s *InvoiceService) InvoicesBySupplier(ctx context.Context, supplierID int64) ([]domain.Invoice, error) {
	return s.repo.FindBySupplier(ctx, supplierID)
}

func (s *InvoiceService) TotalInvoicedBetween(ctx context.Context, start, end time.Time) (float64, error) {
	return s.repo.TotalBetween(ctx, start, end)
}

// RecoveryPercentage computes how much of the period's invoiced volume has been
// paid. A zero invoiced total yields NaN or ±Inf per IEEE-754; callers decide
// how to display that.
func (s *InvoiceService) RecoveryPercentage(ctx context.Context, start, end time.Time) (float64, error) {
	invoiced, err := s.repo.TotalBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	paid, err := s.payments.TotalPaidBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	return RecoveryRate(invoiced, paid), nil
}

// RecoveryRate is the pure recovery ratio: 100 × paid / invoiced.
func RecoveryRate(invoiced, paid float64) float64 {
	return 100 * paid / invoiced
}
