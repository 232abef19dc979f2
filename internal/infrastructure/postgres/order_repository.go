package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository on PostgreSQL (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the order adapter. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListByDate returns every order dated exactly the target day.
func (r *OrderRepo) ListByDate(ctx context.Context, date time.Time) ([]entity.Order, error) {
	query := `
		SELECT id, date, user_id, status, note, total, created_at
		FROM orders WHERE date = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list orders by date: %w", err)
	}
	defer rows.Close()
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Date, &o.UserID, &o.Status, &o.Note, &o.Total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// ListItemsByOrderIDs returns the items of the given orders in one round trip.
func (r *OrderRepo) ListItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]entity.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items WHERE order_id = ANY($1)
		ORDER BY order_id, id`
	rows, err := r.q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// ListItemsByDate returns every order item whose order is dated exactly the
// target day: the engine's demand projection, one join instead of two queries.
func (r *OrderRepo) ListItemsByDate(ctx context.Context, date time.Time) ([]entity.DatedOrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.date = $1
		ORDER BY oi.order_id, oi.id`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list order items by date: %w", err)
	}
	defer rows.Close()
	var list []entity.DatedOrderItem
	for rows.Next() {
		var item entity.DatedOrderItem
		if err := rows.Scan(&item.OrderItemID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan dated order item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
