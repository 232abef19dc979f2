package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository on PostgreSQL (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List returns every product ordered by name.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT id, name, active, created_at FROM products ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID returns one product, nil when it does not exist.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT id, name, active, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// ListPartsByProductIDs resolves bills of materials for a product set in one
// round trip. Link columns stay nullable; the domain layer decides what a
// malformed row means.
func (r *ProductRepo) ListPartsByProductIDs(ctx context.Context, productIDs []int64) ([]entity.ProductPart, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, product_id, ingredient_id, recipe_id, quantity, product_only, baker_only
		FROM product_parts WHERE product_id = ANY($1)
		ORDER BY product_id, id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product parts: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductPart
	for rows.Next() {
		var part entity.ProductPart
		if err := rows.Scan(&part.ID, &part.ProductID, &part.IngredientID, &part.RecipeID, &part.Quantity, &part.ProductOnly, &part.BakerOnly); err != nil {
			return nil, fmt.Errorf("scan product part: %w", err)
		}
		list = append(list, part)
	}
	return list, rows.Err()
}
