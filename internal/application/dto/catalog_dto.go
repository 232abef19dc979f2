package dto

import "github.com/shopspring/decimal"

// IngredientResponse a raw material.
type IngredientResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	KiloPerUnit decimal.Decimal `json:"kilo_per_unit"`
	Active      bool            `json:"active"`
}

// RecipeResponse a recipe header.
type RecipeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipeLine one ingredient line of a recipe.
type RecipeLine struct {
	IngredientID   int64           `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// RecipeDetailResponse a recipe with its ingredient list and theoretical
// total weight (sum of line quantities).
type RecipeDetailResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TotalWeight decimal.Decimal `json:"total_weight"`
	Ingredients []RecipeLine    `json:"ingredients"`
}

// ProductResponse a sellable product.
type ProductResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ProductPartResponse one bill-of-materials line of a product. Exactly one of
// ingredient_id / recipe_id is set.
type ProductPartResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	IngredientID *int64          `json:"ingredient_id,omitempty"`
	RecipeID     *int64          `json:"recipe_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// OrderItemResponse one product line of an order.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// OrderResponse an order with its items.
type OrderResponse struct {
	ID     int64               `json:"id"`
	Date   string              `json:"date"`
	Status string              `json:"status"`
	Items  []OrderItemResponse `json:"items"`
}

// ProductionItemResponse one product's share within a production batch.
type ProductionItemResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	PlannedQuantity decimal.Decimal `json:"planned_quantity"`
	RecipeQuantity  decimal.Decimal `json:"recipe_quantity"` // produced dough weight, kg
}

// ProductionResponse a production batch with its items.
type ProductionResponse struct {
	ID       int64                    `json:"id"`
	Date     string                   `json:"date"`
	RecipeID int64                    `json:"recipe_id"`
	Status   string                   `json:"status"`
	Items    []ProductionItemResponse `json:"items"`
}
