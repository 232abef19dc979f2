// Package catalog exposes the engine's reference data read-only: ingredients,
// recipes with their lines, products with their bills of materials.
package catalog

import (
	"context"
	"fmt"

	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

// UseCase catalog reads.
type UseCase struct {
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
	productRepo    repository.ProductRepository
}

// NewUseCase builds the catalog use case.
func NewUseCase(
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{ingredientRepo: ingredientRepo, recipeRepo: recipeRepo, productRepo: productRepo}
}

// ListIngredients returns every ingredient.
func (uc *UseCase) ListIngredients(ctx context.Context) ([]dto.IngredientResponse, error) {
	ingredients, err := uc.ingredientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	out := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, dto.IngredientResponse{
			ID:          ing.ID,
			Name:        ing.Name,
			Unit:        ing.Unit,
			KiloPerUnit: ing.KiloPerUnit,
			Active:      ing.Active,
		})
	}
	return out, nil
}

// ListRecipes returns every recipe header.
func (uc *UseCase) ListRecipes(ctx context.Context) ([]dto.RecipeResponse, error) {
	recipes, err := uc.recipeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, dto.RecipeResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

// GetRecipe returns one recipe with its ingredient lines and theoretical
// total weight.
func (uc *UseCase) GetRecipe(ctx context.Context, id int64) (*dto.RecipeDetailResponse, error) {
	recipe, err := uc.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := uc.recipeRepo.ListIngredientsByRecipeIDs(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	names, err := uc.ingredientNames(ctx)
	if err != nil {
		return nil, err
	}

	expansion := domcons.NewRecipeExpansion(lines)
	detail := &dto.RecipeDetailResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		TotalWeight: expansion.TotalWeight(id),
	}
	for _, line := range lines {
		ing := names[line.IngredientID]
		detail.Ingredients = append(detail.Ingredients, dto.RecipeLine{
			IngredientID:   line.IngredientID,
			IngredientName: ing.Name,
			Quantity:       line.Quantity,
			Unit:           ing.Unit,
		})
	}
	return detail, nil
}

// ListProducts returns every product.
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{ID: p.ID, Name: p.Name, Active: p.Active})
	}
	return out, nil
}

// GetProductParts returns a product's bill of materials. Empty is valid: such
// a product simply contributes no consumption.
func (uc *UseCase) GetProductParts(ctx context.Context, productID int64) ([]dto.ProductPartResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	parts, err := uc.productRepo.ListPartsByProductIDs(ctx, []int64{productID})
	if err != nil {
		return nil, fmt.Errorf("list product parts: %w", err)
	}
	out := make([]dto.ProductPartResponse, 0, len(parts))
	for _, part := range parts {
		out = append(out, dto.ProductPartResponse{
			ID:           part.ID,
			ProductID:    part.ProductID,
			IngredientID: part.IngredientID,
			RecipeID:     part.RecipeID,
			Quantity:     part.Quantity,
		})
	}
	return out, nil
}

func (uc *UseCase) ingredientNames(ctx context.Context) (map[int64]entity.Ingredient, error) {
	ingredients, err := uc.ingredientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	byID := make(map[int64]entity.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	return byID, nil
}
