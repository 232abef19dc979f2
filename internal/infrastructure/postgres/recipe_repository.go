package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implements RecipeRepository on PostgreSQL (usable with pool or tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository builds the recipe adapter. Pass pool or tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// List returns every recipe ordered by name.
func (r *RecipeRepo) List(ctx context.Context) ([]entity.Recipe, error) {
	query := `SELECT id, name, created_at FROM recipes ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// GetByID returns one recipe, nil when it does not exist.
func (r *RecipeRepo) GetByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	query := `SELECT id, name, created_at FROM recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(ctx, query, id).Scan(&rec.ID, &rec.Name, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe by id: %w", err)
	}
	return &rec, nil
}

// ListIngredientsByRecipeIDs returns every ingredient line of the given
// recipes in one round trip.
func (r *RecipeRepo) ListIngredientsByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]entity.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT recipe_id, ingredient_id, quantity
		FROM recipe_ingredients WHERE recipe_id = ANY($1)
		ORDER BY recipe_id, ingredient_id`
	rows, err := r.q.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	var list []entity.RecipeIngredient
	for rows.Next() {
		var line entity.RecipeIngredient
		if err := rows.Scan(&line.RecipeID, &line.IngredientID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		list = append(list, line)
	}
	return list, rows.Err()
}
