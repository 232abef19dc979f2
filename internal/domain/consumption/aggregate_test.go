package consumption_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func contrib(ingredient, product int64, qty string, source string) consumption.Contribution {
	return consumption.Contribution{
		Date:         testDay,
		IngredientID: ingredient,
		ProductID:    product,
		Quantity:     decimal.RequireFromString(qty),
		Source:       source,
	}
}

func TestAggregate_MergesSameKey(t *testing.T) {
	// Two order items for the same product/ingredient/date/source must fold
	// into one row: summed quantity, order_count = number of contributions.
	records := consumption.Aggregate([]consumption.Contribution{
		contrib(1, 10, "4", entity.ConsumptionSourceDirect),
		contrib(1, 10, "6", entity.ConsumptionSourceDirect),
	})

	require.Len(t, records, 1)
	assert.True(t, records[0].Quantity.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, 2, records[0].OrderCount)
	assert.Equal(t, entity.ConsumptionSourceDirect, records[0].Source)
}

func TestAggregate_KeepsDistinctKeysApart(t *testing.T) {
	records := consumption.Aggregate([]consumption.Contribution{
		contrib(1, 10, "4", entity.ConsumptionSourceDirect),
		contrib(1, 10, "4", entity.ConsumptionSourceRecipe), // same pair, other source
		contrib(1, 11, "4", entity.ConsumptionSourceDirect), // other product
		contrib(2, 10, "4", entity.ConsumptionSourceDirect), // other ingredient
	})

	require.Len(t, records, 4)
	for _, rec := range records {
		assert.Equal(t, 1, rec.OrderCount)
	}
}

func TestAggregate_DeterministicOrder(t *testing.T) {
	input := []consumption.Contribution{
		contrib(3, 20, "1", entity.ConsumptionSourceRecipe),
		contrib(1, 10, "1", entity.ConsumptionSourceRecipe),
		contrib(1, 10, "1", entity.ConsumptionSourceDirect),
		contrib(2, 10, "1", entity.ConsumptionSourceRecipe),
	}

	a := consumption.Aggregate(input)
	b := consumption.Aggregate(input)
	require.Equal(t, a, b)

	// Sorted by ingredient, then product, then source.
	require.Len(t, a, 4)
	assert.Equal(t, int64(1), a[0].IngredientID)
	assert.Equal(t, entity.ConsumptionSourceDirect, a[0].Source)
	assert.Equal(t, entity.ConsumptionSourceRecipe, a[1].Source)
	assert.Equal(t, int64(2), a[2].IngredientID)
	assert.Equal(t, int64(3), a[3].IngredientID)
}

func TestAggregate_Empty(t *testing.T) {
	records := consumption.Aggregate(nil)
	assert.Empty(t, records)
}
