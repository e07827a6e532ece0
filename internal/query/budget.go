package query

import (
	"time"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// Progress is the state of one budget for the current calendar month.
// Percent is capped at 100 for display; overspend detection must use
// Overspent (raw usage vs raw limit), never the capped percentage.
type Progress struct {
	Used      float64
	Limit     float64
	Percent   float64
	Overspent bool
}

// BudgetProgress sums this month's expense transactions in the budget's
// category. A missing budget yields the zero Progress.
func BudgetProgress(s state.Snapshot, budgetID string, now time.Time) Progress {
	budget, ok := s.Budget(budgetID)
	if !ok {
		return Progress{}
	}

	var used float64
	for _, t := range TransactionsInMonth(s, now.Month(), now.Year()) {
		if t.Kind == model.Expense && t.CategoryID == budget.CategoryID {
			used += t.Amount
		}
	}

	percent := 0.0
	if budget.Limit > 0 {
		percent = used / budget.Limit * 100
		if percent > 100 {
			percent = 100
		}
	}

	return Progress{
		Used:      used,
		Limit:     budget.Limit,
		Percent:   percent,
		Overspent: used > budget.Limit,
	}
}

// OverAlertThreshold reports whether the budget's capped percentage has
// reached its configured alert threshold.
func OverAlertThreshold(s state.Snapshot, budgetID string, now time.Time) bool {
	budget, ok := s.Budget(budgetID)
	if !ok {
		return false
	}
	return BudgetProgress(s, budgetID, now).Percent >= float64(budget.AlertPercent)
}
