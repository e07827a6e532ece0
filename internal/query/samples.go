package query

import (
	"time"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// SampleTransactions returns placeholder entries for display while the
// ledger is still empty. They are never persisted and never affect
// balances or derived totals.
func SampleTransactions(now time.Time) []model.Transaction {
	return []model.Transaction{
		{ID: "sample-1", Kind: model.Expense, Amount: 6.40, Description: "Starbucks", CategoryID: "food", Date: now.AddDate(0, 0, -1), Status: model.StatusCompleted},
		{ID: "sample-2", Kind: model.Expense, Amount: 23.90, Description: "Uber ride", CategoryID: "transport", Date: now.AddDate(0, 0, -2), Status: model.StatusCompleted},
		{ID: "sample-3", Kind: model.Income, Amount: 2400.00, Description: "Payroll", CategoryID: "salary", Date: now.AddDate(0, 0, -5), Status: model.StatusCompleted},
	}
}

// VisibleTransactions is what a list view should render: the real
// collection, or the samples when it is empty and samples are enabled.
func VisibleTransactions(s state.Snapshot, now time.Time) []model.Transaction {
	if len(s.Transactions) == 0 && s.ShowSamples {
		return SampleTransactions(now)
	}
	return s.Transactions
}
