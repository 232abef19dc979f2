// Package consumption holds the pure calculation core of the ingredient
// consumption engine: recipe expansion, allocation arithmetic and the
// aggregation fold. No I/O lives here; data in, records out.
package consumption

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-granular date format used across the engine.
const DateLayout = "2006-01-02"

// Contribution is one ingredient amount attributed by a single evidence event
// (an order item's part, or a production batch item's recipe line).
type Contribution struct {
	Date         time.Time
	IngredientID int64
	ProductID    int64
	Quantity     decimal.Decimal
	Source       string // entity.ConsumptionSourceRecipe or ...Direct
}

// Key identifies the output row a contribution accumulates into.
type Key struct {
	Date         string // YYYY-MM-DD
	IngredientID int64
	ProductID    int64
	Source       string
}

// KeyOf builds the accumulation key for a contribution.
func KeyOf(c Contribution) Key {
	return Key{
		Date:         c.Date.Format(DateLayout),
		IngredientID: c.IngredientID,
		ProductID:    c.ProductID,
		Source:       c.Source,
	}
}

// TraceFunc is an optional hook invoked once per emitted contribution.
// It lets callers (and tests) observe contributions without parsing logs.
type TraceFunc func(Contribution)
