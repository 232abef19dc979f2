package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionBatch is one scheduled or executed production run of a single
// recipe on a given date (the "bakers" table). Read-only input to the engine.
type ProductionBatch struct {
	ID        int64
	Date      time.Time // day granularity
	RecipeID  int64
	Status    string
	Notes     string
	UserID    string
	CreatedAt time.Time
}

// ProductionBatchItem is one product's share within a batch. RecipeQuantity is
// the total dough weight in kg actually produced for this item's recipe
// contribution; the batch reports no per-ingredient actuals.
type ProductionBatchItem struct {
	ID              int64
	ProductionID    int64
	ProductID       int64
	PlannedQuantity decimal.Decimal
	RecipeQuantity  decimal.Decimal
}
