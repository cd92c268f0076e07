package repository

import (
	"context"
	"fmt"

	"barbershop-api/internal/domain"
)

// OrderItemRepository defines the interface for order line item data access.
type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]*domain.OrderItem, error)
}

type orderItemRepository struct {
	db DBTX
}

// NewOrderItemRepository creates a new instance of OrderItemRepository.
func NewOrderItemRepository(db DBTX) OrderItemRepository {
	return &orderItemRepository{db: db}
}

// Create inserts a new order item and fills in the generated ID.
func (r *orderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		item.OrderID,
		item.ProductID,
		item.ProductName,
		item.Quantity,
		item.Price,
		item.TotalPrice,
	).Scan(&item.ID)

	if err != nil {
		return fmt.Errorf("failed to create order item: %w", err)
	}

	return nil
}

// ListByOrderID retrieves all line items belonging to an order.
func (r *orderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, price, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := []*domain.OrderItem{}
	for rows.Next() {
		item := &domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
