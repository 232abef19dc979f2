package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo implements ConsumptionRepository on PostgreSQL (usable with
// pool or tx). ReplaceDay is only safe inside a transaction; the engine runs
// it through TxRunner.
type ConsumptionRepo struct {
	q Querier
}

// NewConsumptionRepository builds the consumption adapter. Pass pool or tx (Querier).
func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

// ReplaceDay removes every row of the date and bulk-inserts the new set via
// COPY. An empty set still deletes, which clears the date.
func (r *ConsumptionRepo) ReplaceDay(ctx context.Context, date time.Time, records []entity.ConsumptionRecord) error {
	if err := r.DeleteByDate(ctx, date); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{date, rec.IngredientID, rec.ProductID, rec.Quantity, rec.Source, rec.OrderCount})
	}
	_, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"daily_ingredient_consumption"},
		[]string{"date", "ingredient_id", "product_id", "quantity", "source", "order_count"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy consumption rows: %w", err)
	}
	return nil
}

// DeleteByDate removes every consumption row of the date.
func (r *ConsumptionRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	_, err := r.q.Exec(ctx, `DELETE FROM daily_ingredient_consumption WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("delete consumption by date: %w", err)
	}
	return nil
}

// ListByDate returns the date's rows joined with ingredient and product names.
func (r *ConsumptionRepo) ListByDate(ctx context.Context, date time.Time) ([]entity.DailyConsumptionRow, error) {
	query := `
		SELECT c.date, c.ingredient_id, c.product_id, c.quantity, c.source, c.order_count,
		       i.name, i.unit, p.name
		FROM daily_ingredient_consumption c
		JOIN ingredients i ON i.id = c.ingredient_id
		JOIN products p ON p.id = c.product_id
		WHERE c.date = $1
		ORDER BY i.name, p.name, c.source`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list consumption by date: %w", err)
	}
	defer rows.Close()
	var list []entity.DailyConsumptionRow
	for rows.Next() {
		var row entity.DailyConsumptionRow
		if err := rows.Scan(
			&row.Date, &row.IngredientID, &row.ProductID, &row.Quantity, &row.Source, &row.OrderCount,
			&row.IngredientName, &row.Unit, &row.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan consumption row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SumByIngredient rolls persisted quantities up per ingredient over an
// inclusive date range.
func (r *ConsumptionRepo) SumByIngredient(ctx context.Context, start, end time.Time) ([]entity.IngredientTotal, error) {
	query := `
		SELECT c.ingredient_id, i.name, i.unit, SUM(c.quantity)
		FROM daily_ingredient_consumption c
		JOIN ingredients i ON i.id = c.ingredient_id
		WHERE c.date BETWEEN $1 AND $2
		GROUP BY c.ingredient_id, i.name, i.unit
		ORDER BY i.name`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum consumption by ingredient: %w", err)
	}
	defer rows.Close()
	var list []entity.IngredientTotal
	for rows.Next() {
		var t entity.IngredientTotal
		if err := rows.Scan(&t.IngredientID, &t.IngredientName, &t.Unit, &t.Total); err != nil {
			return nil, fmt.Errorf("scan ingredient total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// SumByIngredientMonthly groups persisted quantities per calendar month and
// ingredient over an inclusive date range, months ascending.
func (r *ConsumptionRepo) SumByIngredientMonthly(ctx context.Context, start, end time.Time) ([]entity.MonthlyIngredientTotal, error) {
	query := `
		SELECT to_char(c.date, 'YYYY-MM') AS month, c.ingredient_id, i.name, i.unit, SUM(c.quantity)
		FROM daily_ingredient_consumption c
		JOIN ingredients i ON i.id = c.ingredient_id
		WHERE c.date BETWEEN $1 AND $2
		GROUP BY month, c.ingredient_id, i.name, i.unit
		ORDER BY month, i.name`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum consumption by month: %w", err)
	}
	defer rows.Close()
	var list []entity.MonthlyIngredientTotal
	for rows.Next() {
		var t entity.MonthlyIngredientTotal
		if err := rows.Scan(&t.Month, &t.IngredientID, &t.IngredientName, &t.Unit, &t.Total); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
