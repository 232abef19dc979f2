package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order for a delivery date. Created by the order-taking
// flow; the consumption engine only reads it.
type Order struct {
	ID        int64
	Date      time.Time // day granularity
	UserID    string
	Status    string
	Note      string
	Total     decimal.Decimal
	CreatedAt time.Time
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}

// DatedOrderItem is the engine's read projection: order items joined to their
// order's date. One row per order item placed for the target date.
type DatedOrderItem struct {
	OrderItemID int64
	OrderID     int64
	ProductID   int64
	Quantity    decimal.Decimal
}
