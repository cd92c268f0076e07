package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"
)

// CreateOrderItem is one requested line of a new order. Product name and
// price are captured from the storefront and snapshotted on the order.
type CreateOrderItem struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Price       int64
}

// CreateOrderInput carries a storefront checkout request.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   *string
	CustomerPhone   string
	CustomerAddress string
	Items           []CreateOrderItem
	TotalAmount     int64
}

// OrderService defines the interface for order business logic: creation and
// the status lifecycle with its revenue reconciliation side effect.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, []*domain.OrderItem, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByMonth(ctx context.Context, month int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, paymentStatus *domain.PaymentStatus) (*domain.Order, error)
}

type orderService struct {
	repo     *repository.Repository
	notifier NotificationService
	now      func() time.Time
	newCode  func() string
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(repo *repository.Repository, notifier NotificationService) OrderService {
	return &orderService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		newCode:  GenerateOrderCode,
	}
}

// Create resolves the customer, persists the order and its line items in one
// transaction, and emits an order notification. Stock is not decremented at
// order time; fulfilment is confirmed manually by staff.
func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, ErrQuantityInvalid
		}
	}

	var order *domain.Order
	now := s.now()

	err := s.repo.WithTx(ctx, func(r *repository.Repository) error {
		customer, err := resolveCustomer(ctx, r.Customers, in.CustomerName, in.CustomerEmail, in.CustomerPhone, &in.CustomerAddress)
		if err != nil {
			return err
		}

		order = &domain.Order{
			OrderCode:       s.newCode(),
			CustomerID:      customer.ID,
			CustomerName:    in.CustomerName,
			CustomerEmail:   in.CustomerEmail,
			CustomerPhone:   in.CustomerPhone,
			CustomerAddress: in.CustomerAddress,
			TotalAmount:     in.TotalAmount,
			Status:          domain.OrderStatusPending,
			PaymentMethod:   domain.PaymentMethodCash,
			PaymentStatus:   domain.PaymentStatusPending,
			CreatedAt:       now,
			Month:           domain.MonthBucket(now),
		}
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}

		for _, item := range in.Items {
			orderItem := &domain.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       item.Price,
				TotalPrice:  item.Price * int64(item.Quantity),
			}
			if err := r.OrderItems.Create(ctx, orderItem); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Fire-and-forget: a lost notification is an accepted gap, the order is
	// already committed.
	_, _ = s.notifier.Emit(
		ctx,
		domain.NotificationTypeOrder,
		"New order",
		fmt.Sprintf("New order %s from %s", order.OrderCode, order.CustomerName),
		&order.ID,
	)

	return order, nil
}

// GetByID retrieves an order with its line items.
func (s *orderService) GetByID(ctx context.Context, id int64) (*domain.Order, []*domain.OrderItem, error) {
	order, err := s.repo.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.OrderItems.ListByOrderID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// GetByCode retrieves an order by its human-shareable code.
func (s *orderService) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	return s.repo.Orders.FindByCode(ctx, code)
}

// List retrieves all orders.
func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.Orders.List(ctx)
}

// ListByMonth retrieves the orders bucketed under a YYYYMM month.
func (s *orderService) ListByMonth(ctx context.Context, month int) ([]*domain.Order, error) {
	return s.repo.Orders.ListByMonth(ctx, month)
}

// UpdateStatus applies a guarded status transition and reconciles the
// revenue ledger, all within one transaction. Entering shipped or delivered
// stamps the corresponding timestamp.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, paymentStatus *domain.PaymentStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	if paymentStatus != nil && !domain.ValidPaymentStatus(*paymentStatus) {
		return nil, ErrInvalidStatus
	}

	var order *domain.Order

	err := s.repo.WithTx(ctx, func(r *repository.Repository) error {
		var err error
		order, err = r.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// Resubmitting the current value of either axis is a no-op, so one
		// axis can move while the other is re-sent unchanged.
		sameStatus := status == order.Status
		if !sameStatus && !domain.CanTransitionOrder(order.Status, status) {
			return ErrInvalidTransition
		}
		samePayment := paymentStatus != nil && *paymentStatus == order.PaymentStatus
		if paymentStatus != nil && !samePayment && !domain.CanTransitionPayment(order.PaymentStatus, *paymentStatus) {
			return ErrInvalidPaymentTransition
		}

		update := repository.OrderStatusUpdate{
			Status:        status,
			PaymentStatus: paymentStatus,
		}
		now := s.now()
		if !sameStatus {
			switch status {
			case domain.OrderStatusShipped:
				update.ShippedAt = &now
				order.ShippedAt = &now
			case domain.OrderStatusDelivered:
				update.DeliveredAt = &now
				order.DeliveredAt = &now
			}
		}

		if err := r.Orders.UpdateStatus(ctx, id, update); err != nil {
			return err
		}

		order.Status = status
		if paymentStatus != nil {
			order.PaymentStatus = *paymentStatus
		}

		return reconcileRevenue(ctx, r.Revenue, order, now)
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// reconcileRevenue converges the ledger with the delivered-and-paid rule:
// an order contributes exactly one entry, under its own month bucket, while
// it is simultaneously delivered and paid. Keying on the order id makes
// repeated reconciliation a no-op.
func reconcileRevenue(ctx context.Context, ledger repository.RevenueRepository, order *domain.Order, now time.Time) error {
	entry, err := ledger.FindByOrderID(ctx, order.ID)
	if err != nil && !errors.Is(err, repository.ErrRevenueNotFound) {
		return err
	}

	switch {
	case order.DeliveredAndPaid() && entry == nil:
		return ledger.Create(ctx, &domain.Revenue{
			OrderID:     &order.ID,
			Amount:      order.TotalAmount,
			Type:        domain.RevenueTypeOrder,
			Description: fmt.Sprintf("Order %s", order.OrderCode),
			Month:       order.Month,
			CreatedAt:   now,
		})
	case !order.DeliveredAndPaid() && entry != nil:
		return ledger.Delete(ctx, entry.ID)
	}

	return nil
}
