package domain

import "time"

// RevenueType distinguishes order-derived entries from manual adjustments.
type RevenueType string

const (
	RevenueTypeOrder      RevenueType = "order"
	RevenueTypeAdjustment RevenueType = "adjustment"
)

// Revenue is one entry in the monthly revenue ledger. Order-derived entries
// reference the order that produced them; adjustments have no order.
// Entries are inserted and deleted, never mutated.
type Revenue struct {
	ID          int64       `json:"id" db:"id"`
	OrderID     *int64      `json:"order_id,omitempty" db:"order_id"`
	Amount      int64       `json:"amount" db:"amount"`
	Type        RevenueType `json:"type" db:"type"`
	Description string      `json:"description" db:"description"`
	Month       int         `json:"month" db:"month"` // YYYYMM, the order's own bucket
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
