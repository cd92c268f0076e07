package domain

import "time"

// OrderStatus is the fulfilment axis of an order's lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

// PaymentStatus is the payment axis, tracked independently of fulfilment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethodCash is the only supported payment method (cash on delivery).
const PaymentMethodCash = "cash"

// orderTransitions maps each status to the statuses reachable from it.
// Cancelled and returned are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned},
	OrderStatusDelivered: {OrderStatusReturned, OrderStatusCancelled},
}

// CanTransitionOrder reports whether an order may move from one status to another.
func CanTransitionOrder(from, to OrderStatus) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// paymentTransitions: payment only moves forward, pending -> paid -> refunded.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid},
	PaymentStatusPaid:    {PaymentStatusRefunded},
}

// CanTransitionPayment reports whether a payment status change is allowed.
func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, s := range paymentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// Order is a product order. Customer contact fields are denormalized at order
// time so later customer edits do not alter historical records.
type Order struct {
	ID              int64         `json:"id" db:"id"`
	OrderCode       string        `json:"order_code" db:"order_code"`
	CustomerID      int64         `json:"customer_id" db:"customer_id"`
	CustomerName    string        `json:"customer_name" db:"customer_name"`
	CustomerEmail   *string       `json:"customer_email,omitempty" db:"customer_email"`
	CustomerPhone   string        `json:"customer_phone" db:"customer_phone"`
	CustomerAddress string        `json:"customer_address" db:"customer_address"`
	TotalAmount     int64         `json:"total_amount" db:"total_amount"`
	Status          OrderStatus   `json:"status" db:"status"`
	PaymentMethod   string        `json:"payment_method" db:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status" db:"payment_status"`
	ShippedAt       *time.Time    `json:"shipped_at,omitempty" db:"shipped_at"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty" db:"delivered_at"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	Month           int           `json:"month" db:"month"` // YYYYMM, from creation time
}

// DeliveredAndPaid reports whether the order currently counts toward revenue.
func (o *Order) DeliveredAndPaid() bool {
	return o.Status == OrderStatusDelivered && o.PaymentStatus == PaymentStatusPaid
}

// OrderItem is one line of an order. The product name and unit price are
// snapshots taken at order time.
type OrderItem struct {
	ID          int64  `json:"id" db:"id"`
	OrderID     int64  `json:"order_id" db:"order_id"`
	ProductID   int64  `json:"product_id" db:"product_id"`
	ProductName string `json:"product_name" db:"product_name"`
	Quantity    int    `json:"quantity" db:"quantity"`
	Price       int64  `json:"price" db:"price"`
	TotalPrice  int64  `json:"total_price" db:"total_price"`
}
