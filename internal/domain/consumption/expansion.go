package consumption

import (
	"github.com/shopspring/decimal"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// RecipeExpansion is a run-scoped cache of recipe ingredient lists, keyed by
// recipe id. It is built once at the start of a day's pipeline from a single
// bulk fetch and discarded with the run; it must never outlive one
// calculation (no process-wide cache).
type RecipeExpansion struct {
	byRecipe map[int64][]entity.RecipeIngredient
}

// NewRecipeExpansion groups the fetched ingredient lines by recipe.
func NewRecipeExpansion(lines []entity.RecipeIngredient) *RecipeExpansion {
	byRecipe := make(map[int64][]entity.RecipeIngredient)
	for _, l := range lines {
		byRecipe[l.RecipeID] = append(byRecipe[l.RecipeID], l)
	}
	return &RecipeExpansion{byRecipe: byRecipe}
}

// Ingredients returns the recipe's full ingredient list; nil when unknown.
func (e *RecipeExpansion) Ingredients(recipeID int64) []entity.RecipeIngredient {
	return e.byRecipe[recipeID]
}

// TotalWeight is the recipe's theoretical per-batch weight: the sum of its
// ingredient quantities. A recipe summing to zero cannot be ratio-allocated.
func (e *RecipeExpansion) TotalWeight(recipeID int64) decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.byRecipe[recipeID] {
		total = total.Add(l.Quantity)
	}
	return total
}
