package consumption_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

// In-memory fakes for the engine's read and write ports. Write fakes keep
// per-date row ownership observable so replace semantics can be asserted.

var errStoreDown = errors.New("store down")

func day(s string) time.Time {
	t, err := time.Parse(domcons.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func i64(v int64) *int64 { return &v }

// ── orders ────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	items map[string][]entity.DatedOrderItem // keyed by YYYY-MM-DD
	err   error
}

func (f *fakeOrderRepo) ListByDate(_ context.Context, _ time.Time) ([]entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListItemsByOrderIDs(_ context.Context, _ []int64) ([]entity.OrderItem, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListItemsByDate(_ context.Context, date time.Time) ([]entity.DatedOrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[date.Format(domcons.DateLayout)], nil
}

// ── catalog ───────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	parts []entity.ProductPart
	err   error
}

func (f *fakeProductRepo) List(_ context.Context) ([]entity.Product, error)          { return nil, nil }
func (f *fakeProductRepo) GetByID(_ context.Context, _ int64) (*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) ListPartsByProductIDs(_ context.Context, productIDs []int64) ([]entity.ProductPart, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	var out []entity.ProductPart
	for _, p := range f.parts {
		if _, ok := wanted[p.ProductID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRecipeRepo struct {
	lines []entity.RecipeIngredient
	err   error
}

func (f *fakeRecipeRepo) List(_ context.Context) ([]entity.Recipe, error)           { return nil, nil }
func (f *fakeRecipeRepo) GetByID(_ context.Context, _ int64) (*entity.Recipe, error) { return nil, nil }

func (f *fakeRecipeRepo) ListIngredientsByRecipeIDs(_ context.Context, recipeIDs []int64) ([]entity.RecipeIngredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]struct{}, len(recipeIDs))
	for _, id := range recipeIDs {
		wanted[id] = struct{}{}
	}
	var out []entity.RecipeIngredient
	for _, l := range f.lines {
		if _, ok := wanted[l.RecipeID]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

// ── production ────────────────────────────────────────────────────────────────

type fakeProductionRepo struct {
	batches map[string][]entity.ProductionBatch // keyed by YYYY-MM-DD
	items   []entity.ProductionBatchItem
	err     error
}

func (f *fakeProductionRepo) ListByDate(_ context.Context, date time.Time) ([]entity.ProductionBatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.batches[date.Format(domcons.DateLayout)], nil
}

func (f *fakeProductionRepo) ListItemsByProductionIDs(_ context.Context, productionIDs []int64) ([]entity.ProductionBatchItem, error) {
	wanted := make(map[int64]struct{}, len(productionIDs))
	for _, id := range productionIDs {
		wanted[id] = struct{}{}
	}
	var out []entity.ProductionBatchItem
	for _, it := range f.items {
		if _, ok := wanted[it.ProductionID]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// ── consumption store + tx runner ─────────────────────────────────────────────

type memConsumptionStore struct {
	mu            sync.Mutex
	rows          map[string][]entity.ConsumptionRecord // keyed by YYYY-MM-DD
	failReplaceOn map[string]bool
}

func newMemConsumptionStore() *memConsumptionStore {
	return &memConsumptionStore{
		rows:          make(map[string][]entity.ConsumptionRecord),
		failReplaceOn: make(map[string]bool),
	}
}

var _ repository.ConsumptionRepository = (*memConsumptionStore)(nil)

func (s *memConsumptionStore) ReplaceDay(_ context.Context, date time.Time, records []entity.ConsumptionRecord) error {
	key := date.Format(domcons.DateLayout)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failReplaceOn[key] {
		// The tx runner discards the delete on error, mimicking rollback.
		return errStoreDown
	}
	s.rows[key] = append([]entity.ConsumptionRecord(nil), records...)
	return nil
}

func (s *memConsumptionStore) DeleteByDate(_ context.Context, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, date.Format(domcons.DateLayout))
	return nil
}

func (s *memConsumptionStore) ListByDate(_ context.Context, date time.Time) ([]entity.DailyConsumptionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.DailyConsumptionRow
	for _, rec := range s.rows[date.Format(domcons.DateLayout)] {
		out = append(out, entity.DailyConsumptionRow{ConsumptionRecord: rec})
	}
	return out, nil
}

func (s *memConsumptionStore) SumByIngredient(_ context.Context, start, end time.Time) ([]entity.IngredientTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[int64]decimal.Decimal)
	for key, recs := range s.rows {
		d := day(key)
		if d.Before(start) || d.After(end) {
			continue
		}
		for _, rec := range recs {
			totals[rec.IngredientID] = totals[rec.IngredientID].Add(rec.Quantity)
		}
	}
	var out []entity.IngredientTotal
	for id, total := range totals {
		out = append(out, entity.IngredientTotal{IngredientID: id, Total: total})
	}
	return out, nil
}

func (s *memConsumptionStore) SumByIngredientMonthly(_ context.Context, _, _ time.Time) ([]entity.MonthlyIngredientTotal, error) {
	return nil, nil
}

func (s *memConsumptionStore) get(dateKey string) []entity.ConsumptionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.ConsumptionRecord(nil), s.rows[dateKey]...)
}

func (s *memConsumptionStore) seed(dateKey string, records ...entity.ConsumptionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[dateKey] = records
}

type memTxRunner struct {
	store *memConsumptionStore
}

func (r memTxRunner) Run(_ context.Context, fn func(repository.ConsumptionRepository) error) error {
	return fn(r.store)
}
