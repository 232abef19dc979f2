package repository

import (
	"context"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// OrderRepository read access to customer demand. The engine consumes only the
// dated projection; the full rows serve the read endpoints.
type OrderRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]entity.Order, error)
	ListItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]entity.OrderItem, error)
	// ListItemsByDate returns every order item whose order is dated exactly
	// the target day.
	ListItemsByDate(ctx context.Context, date time.Time) ([]entity.DatedOrderItem, error)
}
