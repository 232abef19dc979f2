package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption sources: how an ingredient amount was attributed.
const (
	ConsumptionSourceRecipe = "recipe" // via recipe expansion
	ConsumptionSourceDirect = "direct" // direct product part, no recipe
)

// ConsumptionRecord is one output row of the consumption engine
// (daily_ingredient_consumption). The composite key
// (date, ingredient, product, source) is unique per date; OrderCount tallies
// the contributing events. Rows for a date are fully owned by the last
// successful computation: recomputation replaces, never accumulates.
type ConsumptionRecord struct {
	Date         time.Time // day granularity
	IngredientID int64
	ProductID    int64
	Quantity     decimal.Decimal
	Source       string
	OrderCount   int
}

// DailyConsumptionRow is a ConsumptionRecord joined with ingredient and
// product reference data for reporting.
type DailyConsumptionRow struct {
	ConsumptionRecord
	IngredientName string
	Unit           string
	ProductName    string
}

// IngredientTotal is a per-ingredient consumption sum over a date range.
type IngredientTotal struct {
	IngredientID   int64
	IngredientName string
	Unit           string
	Total          decimal.Decimal
}

// MonthlyIngredientTotal is a per-ingredient sum keyed by calendar month
// ("YYYY-MM"), read from the persisted output table.
type MonthlyIngredientTotal struct {
	Month          string
	IngredientID   int64
	IngredientName string
	Unit           string
	Total          decimal.Decimal
}
