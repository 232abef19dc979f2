package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable finished item. Reference data.
type Product struct {
	ID        int64
	Name      string
	Active    bool
	CreatedAt time.Time
}

// ProductPart is one line of a product's bill of materials: a quantity
// multiplier pointing at either a direct ingredient or a recipe.
// Exactly one of IngredientID / RecipeID must be set; rows violating that
// are skipped with a logged anomaly, never fatally.
type ProductPart struct {
	ID           int64
	ProductID    int64
	IngredientID *int64
	RecipeID     *int64
	Quantity     decimal.Decimal
	ProductOnly  bool
	BakerOnly    bool
}

// IsDirect reports whether the part links a direct ingredient (and only that).
func (p ProductPart) IsDirect() bool {
	return p.IngredientID != nil && p.RecipeID == nil
}

// IsRecipe reports whether the part links a recipe.
func (p ProductPart) IsRecipe() bool {
	return p.RecipeID != nil && p.IngredientID == nil
}

// Valid reports whether exactly one link field is set.
func (p ProductPart) Valid() bool {
	return p.IsDirect() || p.IsRecipe()
}
