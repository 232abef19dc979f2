package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implements IngredientRepository on PostgreSQL (usable with pool or tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository builds the ingredient adapter. Pass pool or tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// List returns every ingredient ordered by name.
func (r *IngredientRepo) List(ctx context.Context) ([]entity.Ingredient, error) {
	query := `
		SELECT id, name, unit, kilo_per_unit, active, created_at
		FROM ingredients ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []entity.Ingredient
	for rows.Next() {
		var in entity.Ingredient
		if err := rows.Scan(&in.ID, &in.Name, &in.Unit, &in.KiloPerUnit, &in.Active, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

// GetByID returns one ingredient, nil when it does not exist.
func (r *IngredientRepo) GetByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, unit, kilo_per_unit, active, created_at
		FROM ingredients WHERE id = $1`
	var in entity.Ingredient
	err := r.q.QueryRow(ctx, query, id).Scan(&in.ID, &in.Name, &in.Unit, &in.KiloPerUnit, &in.Active, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by id: %w", err)
	}
	return &in, nil
}
