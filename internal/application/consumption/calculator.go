package consumption

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

// Calculator runs the single-day pipeline: strategy → aggregate → replace.
// It catches nothing itself; callers (the range orchestrator, or an HTTP
// trigger) own error handling. A per-date in-flight guard ensures the
// replace operation never overlaps itself for the same date.
type Calculator struct {
	txRunner TxRunner
	log      *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCalculator builds the calculator.
func NewCalculator(txRunner TxRunner, log *logger.Logger) *Calculator {
	return &Calculator{
		txRunner: txRunner,
		log:      log,
		inFlight: make(map[string]struct{}),
	}
}

// RunDay computes and persists one date's consumption from the given
// strategy. Returns the number of records written. An empty contribution set
// still replaces the date (clearing it): "nothing was consumed" is a valid
// recomputation result. Returns domain.ErrCalculationInFlight when the same
// date is already being computed.
func (c *Calculator) RunDay(ctx context.Context, date time.Time, strategy Strategy) (int, error) {
	day := Day(date)
	key := day.Format(domcons.DateLayout)

	if !c.acquire(key) {
		return 0, domain.ErrCalculationInFlight
	}
	defer c.release(key)

	contribs, err := strategy.ComputeDay(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("compute %s from %s: %w", key, strategy.Name(), err)
	}

	records := domcons.Aggregate(contribs)

	err = c.txRunner.Run(ctx, func(consRepo repository.ConsumptionRepository) error {
		return consRepo.ReplaceDay(ctx, day, records)
	})
	if err != nil {
		return 0, fmt.Errorf("replace consumption for %s: %w", key, err)
	}

	c.log.Info().
		Str("date", key).
		Str("source", strategy.Name()).
		Int("contributions", len(contribs)).
		Int("records", len(records)).
		Msg("daily consumption stored")
	return len(records), nil
}

func (c *Calculator) acquire(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

func (c *Calculator) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, key)
}

// Day normalizes a timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
