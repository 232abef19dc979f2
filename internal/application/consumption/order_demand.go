package consumption

import (
	"context"
	"fmt"
	"time"

	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

// OrderDemandStrategy derives consumption from customer orders placed for the
// target date: how much raw material satisfying the day's orders requires.
// Direct parts multiply straight through; recipe parts expand through the
// recipe at nominal per-unit quantities.
type OrderDemandStrategy struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	recipeRepo  repository.RecipeRepository
	log         *logger.Logger
	trace       domcons.TraceFunc
}

// NewOrderDemandStrategy builds the strategy. trace may be nil.
func NewOrderDemandStrategy(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
	log *logger.Logger,
	trace domcons.TraceFunc,
) *OrderDemandStrategy {
	return &OrderDemandStrategy{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
		log:         log,
		trace:       trace,
	}
}

// Name identifies the evidence source.
func (s *OrderDemandStrategy) Name() string { return "orders" }

// ComputeDay emits one contribution per (order item, part, [recipe line])
// combination for the date.
func (s *OrderDemandStrategy) ComputeDay(ctx context.Context, date time.Time) ([]domcons.Contribution, error) {
	items, err := s.orderRepo.ListItemsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	if len(items) == 0 {
		s.log.Debug().Str("date", date.Format(domcons.DateLayout)).Msg("no order items for date")
		return nil, nil
	}

	productIDs := distinctProductIDs(items)
	parts, err := s.productRepo.ListPartsByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product parts: %w", err)
	}

	partsByProduct := make(map[int64][]entity.ProductPart, len(productIDs))
	recipeIDSet := make(map[int64]struct{})
	for _, part := range parts {
		partsByProduct[part.ProductID] = append(partsByProduct[part.ProductID], part)
		if part.IsRecipe() {
			recipeIDSet[*part.RecipeID] = struct{}{}
		}
	}

	expansion, err := s.expandRecipes(ctx, recipeIDSet)
	if err != nil {
		return nil, err
	}

	var contribs []domcons.Contribution
	for _, item := range items {
		for _, part := range partsByProduct[item.ProductID] {
			switch {
			case part.IsDirect():
				c := domcons.Contribution{
					Date:         date,
					IngredientID: *part.IngredientID,
					ProductID:    item.ProductID,
					Quantity:     item.Quantity.Mul(part.Quantity),
					Source:       entity.ConsumptionSourceDirect,
				}
				if s.trace != nil {
					s.trace(c)
				}
				contribs = append(contribs, c)

			case part.IsRecipe():
				driving := item.Quantity.Mul(part.Quantity)
				seed := domcons.Contribution{Date: date, ProductID: item.ProductID}
				contribs = append(contribs, domcons.ExpandRecipe(
					seed, expansion.Ingredients(*part.RecipeID), driving, domcons.UnitAllocator{}, s.trace,
				)...)

			default:
				// Input-shape anomaly: neither or both link types set.
				s.log.Warn().
					Int64("part_id", part.ID).
					Int64("product_id", part.ProductID).
					Msg("product part does not link exactly one of ingredient/recipe, skipped")
			}
		}
	}
	return contribs, nil
}

func (s *OrderDemandStrategy) expandRecipes(ctx context.Context, recipeIDSet map[int64]struct{}) (*domcons.RecipeExpansion, error) {
	if len(recipeIDSet) == 0 {
		return domcons.NewRecipeExpansion(nil), nil
	}
	recipeIDs := make([]int64, 0, len(recipeIDSet))
	for id := range recipeIDSet {
		recipeIDs = append(recipeIDs, id)
	}
	lines, err := s.recipeRepo.ListIngredientsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	return domcons.NewRecipeExpansion(lines), nil
}

func distinctProductIDs(items []entity.DatedOrderItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	out := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		out = append(out, item.ProductID)
	}
	return out
}
