package consumption

import (
	"sort"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// Aggregate folds the full contribution list of one date into output records,
// one per (date, ingredient, product, source) key: quantities sum, OrderCount
// counts the contributing events. Pure function; the result is sorted by
// ingredient, product and source so repeated runs compare byte for byte.
func Aggregate(contribs []Contribution) []entity.ConsumptionRecord {
	byKey := make(map[Key]*entity.ConsumptionRecord, len(contribs))
	for _, c := range contribs {
		k := KeyOf(c)
		if rec, ok := byKey[k]; ok {
			rec.Quantity = rec.Quantity.Add(c.Quantity)
			rec.OrderCount++
			continue
		}
		byKey[k] = &entity.ConsumptionRecord{
			Date:         c.Date,
			IngredientID: c.IngredientID,
			ProductID:    c.ProductID,
			Quantity:     c.Quantity,
			Source:       c.Source,
			OrderCount:   1,
		}
	}

	out := make([]entity.ConsumptionRecord, 0, len(byKey))
	for _, rec := range byKey {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IngredientID != out[j].IngredientID {
			return out[i].IngredientID < out[j].IngredientID
		}
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].Source < out[j].Source
	})
	return out
}
