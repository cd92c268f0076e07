package service

import (
	"context"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// RevenueService defines the interface for the revenue ledger's manual side:
// month reporting and staff adjustments. Order-derived entries are managed
// exclusively by the order lifecycle.
type RevenueService interface {
	ListByMonth(ctx context.Context, month int) ([]*domain.Revenue, error)
	TotalByMonth(ctx context.Context, month int) (int64, error)
	CreateAdjustment(ctx context.Context, amount int64, description string, month int) (*domain.Revenue, error)
	Delete(ctx context.Context, id int64) error
}

type revenueService struct {
	repo *repository.Repository
	now  func() time.Time
}

// NewRevenueService creates a new instance of RevenueService.
func NewRevenueService(repo *repository.Repository) RevenueService {
	return &revenueService{repo: repo, now: time.Now}
}

// ListByMonth retrieves the ledger entries for a YYYYMM month.
func (s *revenueService) ListByMonth(ctx context.Context, month int) ([]*domain.Revenue, error) {
	return s.repo.Revenue.ListByMonth(ctx, month)
}

// TotalByMonth sums the ledger for a YYYYMM month.
func (s *revenueService) TotalByMonth(ctx context.Context, month int) (int64, error) {
	return s.repo.Revenue.TotalByMonth(ctx, month)
}

// CreateAdjustment records a manual ledger entry with no order reference.
func (s *revenueService) CreateAdjustment(ctx context.Context, amount int64, description string, month int) (*domain.Revenue, error) {
	entry := &domain.Revenue{
		Amount:      amount,
		Type:        domain.RevenueTypeAdjustment,
		Description: description,
		Month:       month,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Revenue.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete removes a ledger entry. Deleting an order-derived entry never
// touches the order itself.
func (s *revenueService) Delete(ctx context.Context, id int64) error {
	return s.repo.Revenue.Delete(ctx, id)
}
