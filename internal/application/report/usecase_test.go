package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/report"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

func day(s string) time.Time {
	d, err := time.Parse(domcons.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeConsRepo serves canned reporting data and records writes.
type fakeConsRepo struct {
	daily        []entity.DailyConsumptionRow
	totals       []entity.IngredientTotal
	monthly      []entity.MonthlyIngredientTotal
	replacedDays []time.Time
	deletedDays  []time.Time
	sumStart     time.Time
	sumEnd       time.Time
}

func (f *fakeConsRepo) ReplaceDay(_ context.Context, date time.Time, _ []entity.ConsumptionRecord) error {
	f.replacedDays = append(f.replacedDays, date)
	return nil
}

func (f *fakeConsRepo) DeleteByDate(_ context.Context, date time.Time) error {
	f.deletedDays = append(f.deletedDays, date)
	return nil
}

func (f *fakeConsRepo) ListByDate(_ context.Context, _ time.Time) ([]entity.DailyConsumptionRow, error) {
	return f.daily, nil
}

func (f *fakeConsRepo) SumByIngredient(_ context.Context, start, end time.Time) ([]entity.IngredientTotal, error) {
	f.sumStart, f.sumEnd = start, end
	return f.totals, nil
}

func (f *fakeConsRepo) SumByIngredientMonthly(_ context.Context, _, _ time.Time) ([]entity.MonthlyIngredientTotal, error) {
	return f.monthly, nil
}

// fakeTxRunner hands the same repo to every callback, no transaction.
type fakeTxRunner struct {
	repo repository.ConsumptionRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ConsumptionRepository) error) error {
	return fn(f.repo)
}

// emptyStrategy computes nothing for any date.
type emptyStrategy struct{}

func (emptyStrategy) Name() string { return "production" }

func (emptyStrategy) ComputeDay(context.Context, time.Time) ([]domcons.Contribution, error) {
	return nil, nil
}

func newUseCase(repo *fakeConsRepo, now func() time.Time) *report.UseCase {
	log := logger.Nop()
	calc := appcons.NewCalculator(&fakeTxRunner{repo: repo}, log)
	orch := appcons.NewRangeOrchestrator(calc, log)
	return report.NewUseCase(repo, orch, emptyStrategy{}, log, now)
}

func TestDaily_SummarizesDistinctCounts(t *testing.T) {
	repo := &fakeConsRepo{daily: []entity.DailyConsumptionRow{
		{
			ConsumptionRecord: entity.ConsumptionRecord{
				Date: day("2025-03-10"), IngredientID: 1, ProductID: 10,
				Quantity: dec("12"), Source: entity.ConsumptionSourceRecipe, OrderCount: 3,
			},
			IngredientName: "flour", Unit: "kg", ProductName: "rye bread",
		},
		{
			ConsumptionRecord: entity.ConsumptionRecord{
				Date: day("2025-03-10"), IngredientID: 2, ProductID: 10,
				Quantity: dec("0.5"), Source: entity.ConsumptionSourceDirect, OrderCount: 1,
			},
			IngredientName: "salt", Unit: "kg", ProductName: "rye bread",
		},
	}}
	uc := newUseCase(repo, nil)

	out, err := uc.Daily(context.Background(), day("2025-03-10"))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", out.Date)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.TotalIngredients)
	assert.Equal(t, 1, out.TotalProducts)
	assert.Equal(t, "flour", out.Items[0].IngredientName)
	assert.True(t, dec("12").Equal(out.Items[0].Quantity))
}

func TestMonthly_GroupsByMonthMostRecentFirst(t *testing.T) {
	repo := &fakeConsRepo{monthly: []entity.MonthlyIngredientTotal{
		{Month: "2025-01", IngredientID: 1, IngredientName: "flour", Unit: "kg", Total: dec("310")},
		{Month: "2025-02", IngredientID: 1, IngredientName: "flour", Unit: "kg", Total: dec("280")},
		{Month: "2025-02", IngredientID: 2, IngredientName: "salt", Unit: "kg", Total: dec("6")},
	}}
	uc := newUseCase(repo, nil)

	out, err := uc.Monthly(context.Background(), day("2025-01-01"), day("2025-02-28"))
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "2025-02", out[0].Month)
	require.Len(t, out[0].Ingredients, 2)
	assert.Equal(t, "2025-01", out[1].Month)
	require.Len(t, out[1].Ingredients, 1)
	assert.True(t, dec("310").Equal(out[1].Ingredients[0].TotalQuantity))
}

func TestCurrentMonth_RefreshesFirstThroughTomorrow(t *testing.T) {
	repo := &fakeConsRepo{totals: []entity.IngredientTotal{
		{IngredientID: 1, IngredientName: "flour", Unit: "kg", Total: dec("120.5")},
	}}
	now := func() time.Time { return day("2025-03-15") }
	uc := newUseCase(repo, now)

	out, err := uc.CurrentMonth(context.Background())
	require.NoError(t, err)

	// Refresh runs the 1st through tomorrow inclusive: 16 days.
	assert.Len(t, repo.replacedDays, 16)
	assert.Equal(t, day("2025-03-01"), repo.replacedDays[0])
	assert.Equal(t, day("2025-03-16"), repo.replacedDays[15])

	// Totals query covers the same window.
	assert.Equal(t, day("2025-03-01"), repo.sumStart)
	assert.Equal(t, day("2025-03-16"), repo.sumEnd)

	require.Len(t, out, 1)
	assert.Equal(t, "flour", out[0].IngredientName)
	assert.True(t, dec("120.5").Equal(out[0].TotalQuantity))
}

func TestDeleteDay_NormalizesDate(t *testing.T) {
	repo := &fakeConsRepo{}
	uc := newUseCase(repo, nil)

	afternoon := day("2025-03-10").Add(14 * time.Hour)
	require.NoError(t, uc.DeleteDay(context.Background(), afternoon))

	require.Len(t, repo.deletedDays, 1)
	assert.Equal(t, day("2025-03-10"), repo.deletedDays[0])
}
