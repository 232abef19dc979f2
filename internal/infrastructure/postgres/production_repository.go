package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implements ProductionRepository on PostgreSQL (usable with pool or tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository builds the production adapter. Pass pool or tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// ListByDate returns every production batch dated exactly the target day.
func (r *ProductionRepo) ListByDate(ctx context.Context, date time.Time) ([]entity.ProductionBatch, error) {
	query := `
		SELECT id, date, recipe_id, status, notes, user_id, created_at
		FROM bakers WHERE date = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list production batches by date: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductionBatch
	for rows.Next() {
		var b entity.ProductionBatch
		if err := rows.Scan(&b.ID, &b.Date, &b.RecipeID, &b.Status, &b.Notes, &b.UserID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// ListItemsByProductionIDs returns the items of the given batches in one round trip.
func (r *ProductionRepo) ListItemsByProductionIDs(ctx context.Context, productionIDs []int64) ([]entity.ProductionBatchItem, error) {
	if len(productionIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, production_id, product_id, planned_quantity, recipe_quantity
		FROM baker_items WHERE production_id = ANY($1)
		ORDER BY production_id, id`
	rows, err := r.q.Query(ctx, query, productionIDs)
	if err != nil {
		return nil, fmt.Errorf("list production batch items: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductionBatchItem
	for rows.Next() {
		var item entity.ProductionBatchItem
		if err := rows.Scan(&item.ID, &item.ProductionID, &item.ProductID, &item.PlannedQuantity, &item.RecipeQuantity); err != nil {
			return nil, fmt.Errorf("scan production batch item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
