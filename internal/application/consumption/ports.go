package consumption

import (
	"context"
	"time"

	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

// Strategy computes the contributions implied by one evidence source (orders
// or production) for a single date. Implementations fetch, decompose and
// allocate; they raise on fetch failure and never write.
type Strategy interface {
	Name() string
	ComputeDay(ctx context.Context, date time.Time) ([]domcons.Contribution, error)
}

// TxRunner runs a function inside one DB transaction, handing it a
// consumption repository bound to that transaction. Delete-then-insert for a
// date must share a transaction so a failed insert cannot leave the date
// half-written.
type TxRunner interface {
	Run(ctx context.Context, fn func(consRepo repository.ConsumptionRepository) error) error
}
