package consumption_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

func threeDayStrategy() appcons.Strategy {
	orders := &fakeOrderRepo{items: map[string][]entity.DatedOrderItem{
		"2025-03-10": {{OrderItemID: 100, OrderID: 1, ProductID: 10, Quantity: dec("1")}},
		"2025-03-11": {{OrderItemID: 101, OrderID: 2, ProductID: 10, Quantity: dec("2")}},
		"2025-03-12": {{OrderItemID: 102, OrderID: 3, ProductID: 10, Quantity: dec("3")}},
	}}
	products := &fakeProductRepo{parts: []entity.ProductPart{
		{ID: 1, ProductID: 10, IngredientID: i64(1), Quantity: dec("2")},
	}}
	return appcons.NewOrderDemandStrategy(orders, products, &fakeRecipeRepo{}, logger.Nop(), nil)
}

func TestRangeOrchestrator_CoversEveryCalendarDay(t *testing.T) {
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())
	orch := appcons.NewRangeOrchestrator(calc, logger.Nop())

	results, err := orch.RunRange(context.Background(), day("2025-03-10"), day("2025-03-12"), threeDayStrategy())
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, day("2025-03-10").AddDate(0, 0, i), res.Date)
		assert.True(t, res.Success)
		assert.Equal(t, 1, res.Records)
	}
	assert.True(t, store.get("2025-03-11")[0].Quantity.Equal(dec("4")))
}

func TestRangeOrchestrator_IsolatesDayFailure(t *testing.T) {
	// Day 2's write fails: days 1 and 3 still persist correct rows, and the
	// result list reports exactly day 2 as failed.
	store := newMemConsumptionStore()
	store.failReplaceOn["2025-03-11"] = true
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())
	orch := appcons.NewRangeOrchestrator(calc, logger.Nop())

	results, err := orch.RunRange(context.Background(), day("2025-03-10"), day("2025-03-12"), threeDayStrategy())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Err)
	assert.True(t, results[2].Success)

	assert.True(t, store.get("2025-03-10")[0].Quantity.Equal(dec("2")))
	assert.Empty(t, store.get("2025-03-11"))
	assert.True(t, store.get("2025-03-12")[0].Quantity.Equal(dec("6")))
}

func TestRangeOrchestrator_SingleDayRange(t *testing.T) {
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())
	orch := appcons.NewRangeOrchestrator(calc, logger.Nop())

	results, err := orch.RunRange(context.Background(), day("2025-03-10"), day("2025-03-10"), threeDayStrategy())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestRangeOrchestrator_RejectsReversedRange(t *testing.T) {
	calc := appcons.NewCalculator(memTxRunner{newMemConsumptionStore()}, logger.Nop())
	orch := appcons.NewRangeOrchestrator(calc, logger.Nop())

	_, err := orch.RunRange(context.Background(), day("2025-03-12"), day("2025-03-10"), threeDayStrategy())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRangeOrchestrator_StopsAfterCancel(t *testing.T) {
	// Cancellation lets the in-flight day finish and skips the rest.
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())
	orch := appcons.NewRangeOrchestrator(calc, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := orch.RunRange(ctx, day("2025-03-10"), day("2025-03-12"), threeDayStrategy())
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
