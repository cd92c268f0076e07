package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStatusUpdate carries the fields touched by a status transition.
// Nil pointer fields are left unchanged.
type OrderStatusUpdate struct {
	Status        domain.OrderStatus
	PaymentStatus *domain.PaymentStatus
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByCode(ctx context.Context, code string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Order, error)
	CountByMonth(ctx context.Context, month int) (int, error)
	UpdateStatus(ctx context.Context, id int64, update OrderStatusUpdate) error
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, order_code, customer_id, customer_name, customer_email,
	customer_phone, customer_address, total_amount, status, payment_method,
	payment_status, shipped_at, delivered_at, created_at, month`

func scanOrder(row interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.OrderCode,
		&order.CustomerID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.CustomerAddress,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.ShippedAt,
		&order.DeliveredAt,
		&order.CreatedAt,
		&order.Month,
	)
	return order, err
}

// Create inserts a new order and fills in the generated ID.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (order_code, customer_id, customer_name, customer_email,
			customer_phone, customer_address, total_amount, status, payment_method,
			payment_status, created_at, month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		order.OrderCode,
		order.CustomerID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.CustomerAddress,
		order.TotalAmount,
		order.Status,
		order.PaymentMethod,
		order.PaymentStatus,
		order.CreatedAt,
		order.Month,
	).Scan(&order.ID)

	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// FindByID retrieves an order by ID.
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	return order, nil
}

// FindByCode retrieves an order by its human-shareable order code.
func (r *orderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_code = $1`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by code: %w", err)
	}

	return order, nil
}

// List retrieves all orders, newest first.
func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY created_at DESC`, orderColumns)
	return r.queryOrders(ctx, query)
}

// ListByMonth retrieves the orders bucketed under the given YYYYMM month,
// newest first.
func (r *orderRepository) ListByMonth(ctx context.Context, month int) ([]*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE month = $1 ORDER BY created_at DESC`, orderColumns)
	return r.queryOrders(ctx, query, month)
}

// CountByMonth counts the orders bucketed under the given YYYYMM month.
func (r *orderRepository) CountByMonth(ctx context.Context, month int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE month = $1`, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// UpdateStatus persists a status transition and its side-effect fields.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, update OrderStatusUpdate) error {
	query := `
		UPDATE orders
		SET status = $2,
		    payment_status = COALESCE($3, payment_status),
		    shipped_at = COALESCE($4, shipped_at),
		    delivered_at = COALESCE($5, delivered_at)
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		update.Status,
		update.PaymentStatus,
		update.ShippedAt,
		update.DeliveredAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
