package consumption

import (
	"github.com/shopspring/decimal"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// Allocator converts one recipe line into an ingredient amount for a driving
// quantity. Both strategies share the same recipe walk and differ only here:
// order demand multiplies by the line's nominal quantity, production actuals
// allocate by the line's share of the recipe's total weight.
type Allocator interface {
	Allocate(line entity.RecipeIngredient, driving decimal.Decimal) decimal.Decimal
}

// UnitAllocator multiplies the driving quantity (ordered units × part
// multiplier) by the line's per-recipe-unit quantity.
type UnitAllocator struct{}

func (UnitAllocator) Allocate(line entity.RecipeIngredient, driving decimal.Decimal) decimal.Decimal {
	return driving.Mul(line.Quantity)
}

// RatioAllocator distributes a known aggregate (the actually produced dough
// weight in kg) across ingredients in proportion to their share of the
// recipe's nominal total weight:
//
//	consumption = driving × line.Quantity / totalWeight
//
// This reconstructs per-ingredient actuals from nominal ratios; it does not
// capture yield loss or in-batch substitutions, since no per-ingredient
// actual is recorded upstream.
type RatioAllocator struct {
	TotalWeight decimal.Decimal
}

func (a RatioAllocator) Allocate(line entity.RecipeIngredient, driving decimal.Decimal) decimal.Decimal {
	return driving.Mul(line.Quantity).Div(a.TotalWeight)
}

// ExpandRecipe walks a recipe's ingredient lines and emits one contribution
// per line, quantified by the allocator. Lines without an ingredient id are
// skipped. The trace hook, when set, sees every emitted contribution.
func ExpandRecipe(
	c Contribution,
	lines []entity.RecipeIngredient,
	driving decimal.Decimal,
	alloc Allocator,
	trace TraceFunc,
) []Contribution {
	out := make([]Contribution, 0, len(lines))
	for _, line := range lines {
		if line.IngredientID == 0 {
			continue
		}
		contrib := Contribution{
			Date:         c.Date,
			IngredientID: line.IngredientID,
			ProductID:    c.ProductID,
			Quantity:     alloc.Allocate(line, driving),
			Source:       entity.ConsumptionSourceRecipe,
		}
		if trace != nil {
			trace(contrib)
		}
		out = append(out, contrib)
	}
	return out
}
