package repository

import (
	"context"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// ConsumptionRepository owns the daily_ingredient_consumption table, the only
// table the engine writes.
type ConsumptionRepository interface {
	// ReplaceDay removes every row for the date and bulk-inserts the new set.
	// Callers run it inside a transaction so a failed insert cannot leave the
	// date half-written.
	ReplaceDay(ctx context.Context, date time.Time, records []entity.ConsumptionRecord) error
	DeleteByDate(ctx context.Context, date time.Time) error
	ListByDate(ctx context.Context, date time.Time) ([]entity.DailyConsumptionRow, error)
	// SumByIngredient rolls persisted quantities up per ingredient over an
	// inclusive date range.
	SumByIngredient(ctx context.Context, start, end time.Time) ([]entity.IngredientTotal, error)
	// SumByIngredientMonthly groups persisted quantities per calendar month
	// and ingredient over an inclusive date range.
	SumByIngredientMonthly(ctx context.Context, start, end time.Time) ([]entity.MonthlyIngredientTotal, error)
}
