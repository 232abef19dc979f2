// Package schedule exposes the engine's two evidence sources read-only:
// dated customer orders and logged production batches.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

// UseCase order and production reads by date.
type UseCase struct {
	orderRepo      repository.OrderRepository
	productionRepo repository.ProductionRepository
}

// NewUseCase builds the schedule use case.
func NewUseCase(orderRepo repository.OrderRepository, productionRepo repository.ProductionRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo, productionRepo: productionRepo}
}

// OrdersForDate returns the date's orders with their items.
func (uc *UseCase) OrdersForDate(ctx context.Context, date time.Time) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return []dto.OrderResponse{}, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}
	items, err := uc.orderRepo.ListItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	itemsByOrder := make(map[int64][]entity.OrderItem, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := dto.OrderResponse{
			ID:     o.ID,
			Date:   o.Date.Format(domcons.DateLayout),
			Status: o.Status,
		}
		for _, item := range itemsByOrder[o.ID] {
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}

// ProductionsForDate returns the date's production batches with their items.
func (uc *UseCase) ProductionsForDate(ctx context.Context, date time.Time) ([]dto.ProductionResponse, error) {
	batches, err := uc.productionRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list production batches: %w", err)
	}
	if len(batches) == 0 {
		return []dto.ProductionResponse{}, nil
	}

	batchIDs := make([]int64, 0, len(batches))
	for _, b := range batches {
		batchIDs = append(batchIDs, b.ID)
	}
	items, err := uc.productionRepo.ListItemsByProductionIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("list production batch items: %w", err)
	}
	itemsByBatch := make(map[int64][]entity.ProductionBatchItem, len(batches))
	for _, item := range items {
		itemsByBatch[item.ProductionID] = append(itemsByBatch[item.ProductionID], item)
	}

	out := make([]dto.ProductionResponse, 0, len(batches))
	for _, b := range batches {
		resp := dto.ProductionResponse{
			ID:       b.ID,
			Date:     b.Date.Format(domcons.DateLayout),
			RecipeID: b.RecipeID,
			Status:   b.Status,
		}
		for _, item := range itemsByBatch[b.ID] {
			resp.Items = append(resp.Items, dto.ProductionItemResponse{
				ID:              item.ID,
				ProductID:       item.ProductID,
				PlannedQuantity: item.PlannedQuantity,
				RecipeQuantity:  item.RecipeQuantity,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}
