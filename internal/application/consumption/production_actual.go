package consumption

import (
	"context"
	"fmt"
	"time"

	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

// ProductionActualStrategy derives consumption from production batches logged
// for the target date. A batch item records only the aggregate dough weight
// actually produced (RecipeQuantity, kg); per-ingredient actuals are
// reconstructed by assuming the batch was mixed at the recipe's nominal
// ratios, so consumption scales linearly with produced weight relative to the
// recipe's theoretical total weight.
type ProductionActualStrategy struct {
	productionRepo repository.ProductionRepository
	recipeRepo     repository.RecipeRepository
	log            *logger.Logger
	trace          domcons.TraceFunc
}

// NewProductionActualStrategy builds the strategy. trace may be nil.
func NewProductionActualStrategy(
	productionRepo repository.ProductionRepository,
	recipeRepo repository.RecipeRepository,
	log *logger.Logger,
	trace domcons.TraceFunc,
) *ProductionActualStrategy {
	return &ProductionActualStrategy{
		productionRepo: productionRepo,
		recipeRepo:     recipeRepo,
		log:            log,
		trace:          trace,
	}
}

// Name identifies the evidence source.
func (s *ProductionActualStrategy) Name() string { return "production" }

// ComputeDay emits one contribution per (batch item, recipe line) for the date.
func (s *ProductionActualStrategy) ComputeDay(ctx context.Context, date time.Time) ([]domcons.Contribution, error) {
	batches, err := s.productionRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list production batches: %w", err)
	}
	if len(batches) == 0 {
		s.log.Debug().Str("date", date.Format(domcons.DateLayout)).Msg("no production batches for date")
		return nil, nil
	}

	batchIDs := make([]int64, 0, len(batches))
	recipeByBatch := make(map[int64]int64, len(batches))
	recipeIDSet := make(map[int64]struct{})
	for _, b := range batches {
		batchIDs = append(batchIDs, b.ID)
		recipeByBatch[b.ID] = b.RecipeID
		recipeIDSet[b.RecipeID] = struct{}{}
	}

	items, err := s.productionRepo.ListItemsByProductionIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("list production batch items: %w", err)
	}

	recipeIDs := make([]int64, 0, len(recipeIDSet))
	for id := range recipeIDSet {
		recipeIDs = append(recipeIDs, id)
	}
	lines, err := s.recipeRepo.ListIngredientsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	expansion := domcons.NewRecipeExpansion(lines)

	var contribs []domcons.Contribution
	for _, item := range items {
		recipeID, ok := recipeByBatch[item.ProductionID]
		if !ok {
			s.log.Warn().Int64("production_id", item.ProductionID).Msg("no recipe bound to production run, skipped")
			continue
		}

		totalWeight := expansion.TotalWeight(recipeID)
		if !totalWeight.IsPositive() {
			// A zero-weight recipe cannot be ratio-allocated; skipping here is
			// what keeps the division below safe.
			s.log.Warn().Int64("recipe_id", recipeID).Msg("recipe has zero total weight, skipped")
			continue
		}

		seed := domcons.Contribution{Date: date, ProductID: item.ProductID}
		contribs = append(contribs, domcons.ExpandRecipe(
			seed, expansion.Ingredients(recipeID), item.RecipeQuantity,
			domcons.RatioAllocator{TotalWeight: totalWeight}, s.trace,
		)...)
	}
	return contribs, nil
}
