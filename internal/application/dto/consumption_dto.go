package dto

import "github.com/shopspring/decimal"

// Calculation sources accepted by the trigger endpoints.
const (
	CalculationSourceOrders     = "orders"
	CalculationSourceProduction = "production"
)

// CalculateRequest triggers a single-day consumption calculation.
type CalculateRequest struct {
	Date   string `json:"date"`   // YYYY-MM-DD
	Source string `json:"source"` // orders | production
}

// CalculateResponse reports what a single-day run wrote.
type CalculateResponse struct {
	Date    string `json:"date"`
	Source  string `json:"source"`
	Records int    `json:"records"`
}

// CalculateRangeRequest triggers a date-range calculation.
type CalculateRangeRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
	Source    string `json:"source"`     // orders | production
}

// DayResult is one day's outcome within a range run.
type DayResult struct {
	Date    string `json:"date"`
	Success bool   `json:"success"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// DailyConsumptionItem is one persisted consumption row joined with names.
type DailyConsumptionItem struct {
	Date           string          `json:"date"`
	IngredientID   int64           `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	ProductID      int64           `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Source         string          `json:"source"`
	OrderCount     int             `json:"order_count"`
}

// DailyConsumptionSummary is the daily report.
type DailyConsumptionSummary struct {
	Date             string                 `json:"date"`
	Items            []DailyConsumptionItem `json:"items"`
	TotalIngredients int                    `json:"total_ingredients"`
	TotalProducts    int                    `json:"total_products"`
}

// MonthlyIngredientConsumption is one ingredient's total within a month.
type MonthlyIngredientConsumption struct {
	IngredientID   int64           `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	Unit           string          `json:"unit"`
}

// MonthlyConsumptionSummary is the monthly rollup, one entry per month.
type MonthlyConsumptionSummary struct {
	Month       string                         `json:"month"` // YYYY-MM
	Ingredients []MonthlyIngredientConsumption `json:"ingredients"`
}

// CurrentMonthConsumption is the planning view row: per-ingredient total for
// the running month.
type CurrentMonthConsumption struct {
	IngredientID   int64           `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	Unit           string          `json:"unit"`
}
