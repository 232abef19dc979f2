package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is a named formula producing a dough or mix. Reference data.
type Recipe struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// RecipeIngredient is one ingredient's role in a recipe. Quantity is expressed
// in the ingredient's unit per one recipe unit and must be strictly positive;
// the sum over a recipe is its theoretical total weight.
type RecipeIngredient struct {
	RecipeID     int64
	IngredientID int64
	Quantity     decimal.Decimal
}
