package consumption_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

func TestRecipeExpansion_GroupsByRecipe(t *testing.T) {
	exp := consumption.NewRecipeExpansion([]entity.RecipeIngredient{
		{RecipeID: 1, IngredientID: 10, Quantity: decimal.NewFromInt(6)},
		{RecipeID: 2, IngredientID: 11, Quantity: decimal.NewFromInt(2)},
		{RecipeID: 1, IngredientID: 12, Quantity: decimal.NewFromInt(3)},
	})

	assert.Len(t, exp.Ingredients(1), 2)
	assert.Len(t, exp.Ingredients(2), 1)
	assert.Nil(t, exp.Ingredients(99))
}

func TestRecipeExpansion_TotalWeight(t *testing.T) {
	exp := consumption.NewRecipeExpansion([]entity.RecipeIngredient{
		{RecipeID: 1, IngredientID: 10, Quantity: decimal.RequireFromString("6.5")},
		{RecipeID: 1, IngredientID: 12, Quantity: decimal.RequireFromString("3.5")},
	})

	assert.True(t, exp.TotalWeight(1).Equal(decimal.NewFromInt(10)))
	// Unknown recipe has zero weight; callers must skip it before dividing.
	assert.True(t, exp.TotalWeight(99).IsZero())
}
