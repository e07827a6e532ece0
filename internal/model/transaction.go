package model

import "time"

// TransactionKind is the direction of a recorded money movement.
type TransactionKind string

const (
	// Expense is money leaving a wallet.
	Expense TransactionKind = "expense"
	// Income is money entering a wallet.
	Income TransactionKind = "income"
	// TransferKind moves money between two wallets.
	TransferKind TransactionKind = "transfer"
)

// TransactionStatus indicates whether a movement has settled.
type TransactionStatus string

const (
	// StatusCompleted marks a settled transaction.
	StatusCompleted TransactionStatus = "completed"
	// StatusPending marks a transaction that has not settled yet.
	StatusPending TransactionStatus = "pending"
)

// Frequency describes how often a recurring transaction repeats.
type Frequency string

// Recurrence frequencies.
const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Transaction represents a single recorded money movement.
//
// Transfers carry the sentinel CategoryTransfer and require a ToWalletID
// distinct from WalletID; expenses and incomes require a real category.
// Both rules are enforced at the input boundary, not here.
type Transaction struct {
	ID          string            `json:"id"`
	Kind        TransactionKind   `json:"kind"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	CategoryID  string            `json:"category_id"`
	WalletID    string            `json:"wallet_id"`
	ToWalletID  string            `json:"to_wallet_id,omitempty"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
	Payee       string            `json:"payee,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Recurring   bool              `json:"recurring"`
	Frequency   Frequency         `json:"frequency,omitempty"`
}

// InMonth reports whether the transaction falls in the given calendar month.
func (t Transaction) InMonth(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}
