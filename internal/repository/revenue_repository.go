package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrRevenueNotFound = errors.New("revenue entry not found")

// RevenueRepository defines the interface for revenue ledger data access.
// The ledger is append/delete only; entries are never mutated.
type RevenueRepository interface {
	Create(ctx context.Context, entry *domain.Revenue) error
	Delete(ctx context.Context, id int64) error
	FindByOrderID(ctx context.Context, orderID int64) (*domain.Revenue, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Revenue, error)
	TotalByMonth(ctx context.Context, month int) (int64, error)
}

type revenueRepository struct {
	db DBTX
}

// NewRevenueRepository creates a new instance of RevenueRepository.
func NewRevenueRepository(db DBTX) RevenueRepository {
	return &revenueRepository{db: db}
}

// Create inserts a new ledger entry and fills in the generated ID.
func (r *revenueRepository) Create(ctx context.Context, entry *domain.Revenue) error {
	query := `
		INSERT INTO revenue (order_id, amount, type, description, month, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		entry.OrderID,
		entry.Amount,
		entry.Type,
		entry.Description,
		entry.Month,
		entry.CreatedAt,
	).Scan(&entry.ID)

	if err != nil {
		return fmt.Errorf("failed to create revenue entry: %w", err)
	}

	return nil
}

// Delete removes a ledger entry.
func (r *revenueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM revenue WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete revenue entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrRevenueNotFound
	}

	return nil
}

// FindByOrderID retrieves the ledger entry recorded for an order, if any.
// Reconciliation keys on this lookup to stay idempotent.
func (r *revenueRepository) FindByOrderID(ctx context.Context, orderID int64) (*domain.Revenue, error) {
	query := `
		SELECT id, order_id, amount, type, description, month, created_at
		FROM revenue
		WHERE order_id = $1
	`

	entry := &domain.Revenue{}
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&entry.ID,
		&entry.OrderID,
		&entry.Amount,
		&entry.Type,
		&entry.Description,
		&entry.Month,
		&entry.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRevenueNotFound
		}
		return nil, fmt.Errorf("failed to find revenue entry by order ID: %w", err)
	}

	return entry, nil
}

// ListByMonth retrieves the ledger entries bucketed under the given YYYYMM month.
func (r *revenueRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Revenue, error) {
	query := `
		SELECT id, order_id, amount, type, description, month, created_at
		FROM revenue
		WHERE month = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.Revenue{}
	for rows.Next() {
		entry := &domain.Revenue{}
		err := rows.Scan(
			&entry.ID,
			&entry.OrderID,
			&entry.Amount,
			&entry.Type,
			&entry.Description,
			&entry.Month,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue entries: %w", err)
	}

	return entries, nil
}

// TotalByMonth sums the ledger amounts for the given YYYYMM month.
func (r *revenueRepository) TotalByMonth(ctx context.Context, month int) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM revenue WHERE month = $1`,
		month,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("failed to total revenue: %w", err)
	}

	return total, nil
}
