package repository

import (
	"context"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// ProductionRepository read access to logged production runs.
type ProductionRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]entity.ProductionBatch, error)
	ListItemsByProductionIDs(ctx context.Context, productionIDs []int64) ([]entity.ProductionBatchItem, error)
}
