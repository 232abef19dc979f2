package consumption

import (
	"context"
	"time"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

// DayResult is the orchestrator's per-day outcome.
type DayResult struct {
	Date    time.Time
	Success bool
	Records int
	Err     string // empty on success
}

// RangeOrchestrator drives the single-day pipeline across an inclusive date
// range, strictly sequentially in calendar order (no gaps, weekends
// included). One day's failure is recorded and never aborts the remaining
// days; the caller inspects the result list and decides about retries.
type RangeOrchestrator struct {
	calc *Calculator
	log  *logger.Logger
}

// NewRangeOrchestrator builds the orchestrator.
func NewRangeOrchestrator(calc *Calculator, log *logger.Logger) *RangeOrchestrator {
	return &RangeOrchestrator{calc: calc, log: log}
}

// RunRange computes every date in [start, end] with the given strategy.
// Returns domain.ErrInvalidInput when end precedes start. Context
// cancellation lets the in-flight day finish and skips the rest.
func (o *RangeOrchestrator) RunRange(ctx context.Context, start, end time.Time, strategy Strategy) ([]DayResult, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	var results []DayResult
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		records, err := o.calc.RunDay(ctx, d, strategy)
		if err != nil {
			o.log.Error().
				Err(err).
				Str("date", d.Format(domcons.DateLayout)).
				Msg("day failed, continuing with remaining days")
			results = append(results, DayResult{Date: d, Err: err.Error()})
		} else {
			results = append(results, DayResult{Date: d, Success: true, Records: records})
		}

		if ctx.Err() != nil {
			break
		}
	}
	return results, nil
}
