package consumption_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

func orderFixtureStrategy() appcons.Strategy {
	orders := &fakeOrderRepo{items: map[string][]entity.DatedOrderItem{
		"2025-03-10": {
			{OrderItemID: 100, OrderID: 1, ProductID: 10, Quantity: dec("5")},
			{OrderItemID: 101, OrderID: 2, ProductID: 10, Quantity: dec("3")},
		},
	}}
	products := &fakeProductRepo{parts: []entity.ProductPart{
		{ID: 1, ProductID: 10, IngredientID: i64(1), Quantity: dec("2")},
	}}
	return appcons.NewOrderDemandStrategy(orders, products, &fakeRecipeRepo{}, logger.Nop(), nil)
}

func TestCalculator_WritesAggregatedDay(t *testing.T) {
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())

	n, err := calc.RunDay(context.Background(), day("2025-03-10"), orderFixtureStrategy())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows := store.get("2025-03-10")
	require.Len(t, rows, 1)
	// Two order items for the same product/ingredient merge: 5×2 + 3×2 = 16.
	assert.True(t, rows[0].Quantity.Equal(dec("16")))
	assert.Equal(t, 2, rows[0].OrderCount)
}

func TestCalculator_Idempotence(t *testing.T) {
	// Running the pipeline twice over identical input yields identical rows:
	// replace, not accumulate.
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())
	strategy := orderFixtureStrategy()

	_, err := calc.RunDay(context.Background(), day("2025-03-10"), strategy)
	require.NoError(t, err)
	first := store.get("2025-03-10")

	_, err = calc.RunDay(context.Background(), day("2025-03-10"), strategy)
	require.NoError(t, err)
	second := store.get("2025-03-10")

	assert.Equal(t, first, second)
}

func TestCalculator_ReplacesStaleRows(t *testing.T) {
	store := newMemConsumptionStore()
	store.seed("2025-03-10", entity.ConsumptionRecord{
		Date: day("2025-03-10"), IngredientID: 99, ProductID: 99, Quantity: dec("123"),
		Source: entity.ConsumptionSourceRecipe, OrderCount: 7,
	})
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())

	_, err := calc.RunDay(context.Background(), day("2025-03-10"), orderFixtureStrategy())
	require.NoError(t, err)

	rows := store.get("2025-03-10")
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].IngredientID, "stale row must be gone")
}

func TestCalculator_EmptyResultClearsDay(t *testing.T) {
	// A recomputation finding no contributions still owns the date: stale
	// rows are removed, not kept.
	store := newMemConsumptionStore()
	store.seed("2025-03-11", entity.ConsumptionRecord{
		Date: day("2025-03-11"), IngredientID: 99, ProductID: 99, Quantity: dec("123"),
		Source: entity.ConsumptionSourceRecipe, OrderCount: 7,
	})
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())

	empty := appcons.NewOrderDemandStrategy(&fakeOrderRepo{}, &fakeProductRepo{}, &fakeRecipeRepo{}, logger.Nop(), nil)
	n, err := calc.RunDay(context.Background(), day("2025-03-11"), empty)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, store.get("2025-03-11"))
}

func TestCalculator_NormalizesToCalendarDay(t *testing.T) {
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())

	afternoon := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)
	_, err := calc.RunDay(context.Background(), afternoon, orderFixtureStrategy())
	require.NoError(t, err)
	assert.Len(t, store.get("2025-03-10"), 1)
}

// blockingStrategy parks ComputeDay until released, to hold a date in flight.
type blockingStrategy struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingStrategy) Name() string { return "blocking" }

func (b *blockingStrategy) ComputeDay(_ context.Context, _ time.Time) ([]domcons.Contribution, error) {
	close(b.started)
	<-b.release
	return nil, nil
}

func TestCalculator_RejectsConcurrentSameDate(t *testing.T) {
	store := newMemConsumptionStore()
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())

	blocking := &blockingStrategy{started: make(chan struct{}), release: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := calc.RunDay(context.Background(), day("2025-03-10"), blocking)
		done <- err
	}()
	<-blocking.started

	// Same date: rejected while the first run holds it.
	_, err := calc.RunDay(context.Background(), day("2025-03-10"), orderFixtureStrategy())
	require.ErrorIs(t, err, domain.ErrCalculationInFlight)

	// A different date is not affected.
	_, err = calc.RunDay(context.Background(), day("2025-03-12"), orderFixtureStrategy())
	require.NoError(t, err)

	close(blocking.release)
	require.NoError(t, <-done)

	// Once released, the date is free again.
	_, err = calc.RunDay(context.Background(), day("2025-03-10"), orderFixtureStrategy())
	require.NoError(t, err)
}

func TestCalculator_WriteFailurePropagates(t *testing.T) {
	store := newMemConsumptionStore()
	store.failReplaceOn["2025-03-10"] = true
	calc := appcons.NewCalculator(memTxRunner{store}, logger.Nop())

	_, err := calc.RunDay(context.Background(), day("2025-03-10"), orderFixtureStrategy())
	require.ErrorIs(t, err, errStoreDown)
}
