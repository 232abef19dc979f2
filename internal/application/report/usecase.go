// Package report serves the read side of the consumption engine: downstream
// reporting consumes only the persisted output table, never the strategies.
package report

import (
	"context"
	"fmt"
	"time"

	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

// UseCase consumption reporting over the persisted output table.
type UseCase struct {
	consRepo repository.ConsumptionRepository
	orch     *appcons.RangeOrchestrator
	actuals  appcons.Strategy // production-actual strategy for the planning refresh
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase builds the reporting use case. now is injectable for tests; nil
// means time.Now.
func NewUseCase(
	consRepo repository.ConsumptionRepository,
	orch *appcons.RangeOrchestrator,
	actuals appcons.Strategy,
	log *logger.Logger,
	now func() time.Time,
) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{consRepo: consRepo, orch: orch, actuals: actuals, log: log, now: now}
}

// Daily returns the persisted consumption rows for one date with summary
// counts of distinct ingredients and products.
func (uc *UseCase) Daily(ctx context.Context, date time.Time) (*dto.DailyConsumptionSummary, error) {
	date = appcons.Day(date)
	rows, err := uc.consRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list daily consumption: %w", err)
	}

	items := make([]dto.DailyConsumptionItem, 0, len(rows))
	ingredients := make(map[int64]struct{})
	products := make(map[int64]struct{})
	for _, row := range rows {
		ingredients[row.IngredientID] = struct{}{}
		products[row.ProductID] = struct{}{}
		items = append(items, dto.DailyConsumptionItem{
			Date:           row.Date.Format(domcons.DateLayout),
			IngredientID:   row.IngredientID,
			IngredientName: row.IngredientName,
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			Quantity:       row.Quantity,
			Unit:           row.Unit,
			Source:         row.Source,
			OrderCount:     row.OrderCount,
		})
	}

	return &dto.DailyConsumptionSummary{
		Date:             date.Format(domcons.DateLayout),
		Items:            items,
		TotalIngredients: len(ingredients),
		TotalProducts:    len(products),
	}, nil
}

// Monthly rolls persisted quantities up per calendar month and ingredient
// over an inclusive date range, most recent month first.
func (uc *UseCase) Monthly(ctx context.Context, start, end time.Time) ([]dto.MonthlyConsumptionSummary, error) {
	totals, err := uc.consRepo.SumByIngredientMonthly(ctx, appcons.Day(start), appcons.Day(end))
	if err != nil {
		return nil, fmt.Errorf("monthly rollup: %w", err)
	}

	byMonth := make(map[string][]dto.MonthlyIngredientConsumption)
	var months []string
	for _, t := range totals {
		if _, seen := byMonth[t.Month]; !seen {
			months = append(months, t.Month)
		}
		byMonth[t.Month] = append(byMonth[t.Month], dto.MonthlyIngredientConsumption{
			IngredientID:   t.IngredientID,
			IngredientName: t.IngredientName,
			TotalQuantity:  t.Total,
			Unit:           t.Unit,
		})
	}

	// Months arrive ordered ascending from SQL; present most recent first.
	out := make([]dto.MonthlyConsumptionSummary, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		out = append(out, dto.MonthlyConsumptionSummary{Month: months[i], Ingredients: byMonth[months[i]]})
	}
	return out, nil
}

// CurrentMonth refreshes the running month (1st through tomorrow) from
// production actuals, then returns per-ingredient totals. A failed refresh is
// logged and the view proceeds with whatever is already stored.
func (uc *UseCase) CurrentMonth(ctx context.Context) ([]dto.CurrentMonthConsumption, error) {
	today := appcons.Day(uc.now())
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	if _, err := uc.orch.RunRange(ctx, first, tomorrow, uc.actuals); err != nil {
		uc.log.Warn().Err(err).Msg("current-month refresh failed, serving stored data")
	}

	totals, err := uc.consRepo.SumByIngredient(ctx, first, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("current month totals: %w", err)
	}

	out := make([]dto.CurrentMonthConsumption, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.CurrentMonthConsumption{
			IngredientID:   t.IngredientID,
			IngredientName: t.IngredientName,
			TotalQuantity:  t.Total,
			Unit:           t.Unit,
		})
	}
	return out, nil
}

// DeleteDay removes a date's consumption rows. Downstream readers must treat
// the missing date as unknown, not zero.
func (uc *UseCase) DeleteDay(ctx context.Context, date time.Time) error {
	date = appcons.Day(date)
	if err := uc.consRepo.DeleteByDate(ctx, date); err != nil {
		return fmt.Errorf("delete consumption for %s: %w", date.Format(domcons.DateLayout), err)
	}
	uc.log.Info().Str("date", date.Format(domcons.DateLayout)).Msg("daily consumption deleted")
	return nil
}
