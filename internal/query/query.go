// Package query computes derived data from a snapshot on demand.
// Every function is pure: results come from the snapshot and explicit
// time arguments, and nothing is stored back.
package query

import (
	"time"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// TotalBalance sums all wallet balances nominally. Mixed-currency wallets
// are summed as-is; there is no conversion. It never derives from the
// transaction history.
func TotalBalance(s state.Snapshot) float64 {
	var total float64
	for _, w := range s.Wallets {
		total += w.Balance
	}
	return total
}

// TransactionsInMonth filters transactions to the given calendar month.
func TransactionsInMonth(s state.Snapshot, month time.Month, year int) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.Transactions {
		if t.InMonth(month, year) {
			out = append(out, t)
		}
	}
	return out
}

// RecentTransactions returns the n most recently recorded transactions.
// The collection is kept most-recent-first by insertion, so this is a
// prefix, not a date sort.
func RecentTransactions(s state.Snapshot, n int) []model.Transaction {
	if n > len(s.Transactions) {
		n = len(s.Transactions)
	}
	return s.Transactions[:n]
}

// MonthSummary aggregates completed income, expenses, and net flow for
// the given calendar month.
type MonthSummary struct {
	Income   float64
	Expenses float64
	Net      float64
}

// SummarizeMonth computes a MonthSummary. Transfers move money between
// wallets and count as neither income nor expense.
func SummarizeMonth(s state.Snapshot, month time.Month, year int) MonthSummary {
	var sum MonthSummary
	for _, t := range TransactionsInMonth(s, month, year) {
		switch t.Kind {
		case model.Income:
			sum.Income += t.Amount
		case model.Expense:
			sum.Expenses += t.Amount
		}
	}
	sum.Net = sum.Income - sum.Expenses
	return sum
}
