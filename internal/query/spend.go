package query

import (
	"sort"
	"time"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// CategorySpend pairs a resolved category with its summed expense amount.
type CategorySpend struct {
	Category model.Category
	Amount   float64
}

// SpendByCategory sums this month's expense transactions grouped by
// category, sorted descending by amount. Category IDs that no longer
// resolve fall back to the sentinel "other" category by ID lookup.
// A month with no expenses returns an empty result.
func SpendByCategory(s state.Snapshot, month time.Month, year int) []CategorySpend {
	totals := make(map[string]float64)
	for _, t := range TransactionsInMonth(s, month, year) {
		if t.Kind != model.Expense {
			continue
		}
		totals[t.CategoryID] += t.Amount
	}

	out := make([]CategorySpend, 0, len(totals))
	for id, amount := range totals {
		out = append(out, CategorySpend{Category: s.Category(id), Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category.ID < out[j].Category.ID
	})
	return out
}
