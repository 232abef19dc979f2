package repository

import (
	"context"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// IngredientRepository read access to raw-material reference data.
type IngredientRepository interface {
	List(ctx context.Context) ([]entity.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*entity.Ingredient, error)
}

// RecipeRepository read access to recipes and their ingredient lines.
type RecipeRepository interface {
	List(ctx context.Context) ([]entity.Recipe, error)
	GetByID(ctx context.Context, id int64) (*entity.Recipe, error)
	// ListIngredientsByRecipeIDs returns every ingredient line of the given
	// recipes in one round trip; feeds the run-scoped recipe expansion.
	ListIngredientsByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]entity.RecipeIngredient, error)
}

// ProductRepository read access to products and their bills of materials.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// ListPartsByProductIDs resolves bills of materials for a product set.
	// A product with no parts simply contributes no rows.
	ListPartsByProductIDs(ctx context.Context, productIDs []int64) ([]entity.ProductPart, error)
}
