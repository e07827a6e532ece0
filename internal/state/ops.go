package state

import (
	"time"

	"github.com/aureusfin/aureus/internal/model"
)

// Op is a named, payload-carrying request to transform the snapshot.
// Reduce silently ignores op types it does not recognize; that is the
// documented policy, not an error path.
type Op interface {
	isOp()
}

// SetView replaces the current view and force-closes any open menu.
type SetView struct {
	View View
}

// SetOnboardingStep advances or rewinds the onboarding flow.
type SetOnboardingStep struct {
	Step int
}

// ToggleMenu flips the menu-open flag.
type ToggleMenu struct{}

// CloseMenu clears the menu-open flag.
type CloseMenu struct{}

// SetPreferences shallow-merges the set fields into the user preferences.
// Nil fields are left unchanged. Notifications is replaced as a whole;
// callers wanting a partial notification change must supply the full
// nested value.
type SetPreferences struct {
	Name            *string
	Email           *string
	Currency        *string
	Locale          *string
	Theme           *model.Theme
	FontSize        *model.FontSize
	Biometrics      *bool
	PINLock         *bool
	HideBalances    *bool
	AutoBackup      *bool
	BackupFrequency *model.Frequency
	Notifications   *model.Notifications
}

// SetSubscription shallow-merges the set fields into the subscription.
type SetSubscription struct {
	Plan          *model.Plan
	TrialActive   *bool
	TrialDaysLeft *int
	StartedAt     *time.Time
	ExpiresAt     *time.Time
}

// AddWallet appends a wallet.
type AddWallet struct {
	Wallet model.Wallet
}

// UpdateWallet replaces the wallet with the same ID.
type UpdateWallet struct {
	Wallet model.Wallet
}

// DeleteWallet removes a wallet by ID. Transactions referencing it are
// left in place; dangling references are accepted.
type DeleteWallet struct {
	ID string
}

// SetDefaultWallet flags one wallet as default and clears the flag on
// every other wallet in the same step.
type SetDefaultWallet struct {
	ID string
}

// AddTransaction prepends a transaction record without touching wallet
// balances. Most callers want RecordTransaction instead.
type AddTransaction struct {
	Transaction model.Transaction
}

// UpdateTransaction replaces the transaction with the same ID.
type UpdateTransaction struct {
	Transaction model.Transaction
}

// DeleteTransaction removes a transaction by ID. The wallet-balance effect
// of the original entry is not reversed: the ledger is a log and balances
// are a separately adjusted projection.
type DeleteTransaction struct {
	ID string
}

// RecordTransaction prepends a transaction and applies its wallet balance
// deltas in a single step: expenses debit the wallet, incomes credit it,
// transfers debit the source and credit the destination.
type RecordTransaction struct {
	Transaction model.Transaction
}

// AddBill appends a bill.
type AddBill struct {
	Bill model.Bill
}

// UpdateBill replaces the bill with the same ID.
type UpdateBill struct {
	Bill model.Bill
}

// DeleteBill removes a bill by ID.
type DeleteBill struct {
	ID string
}

// PayBill marks a pending bill paid, records the corresponding expense
// transaction, and debits the bill's wallet, all in a single step.
// Paying a missing or already-paid bill is a no-op.
type PayBill struct {
	BillID string
	TxID   string
	PaidAt time.Time
}

// AddBudget appends a budget.
type AddBudget struct {
	Budget model.Budget
}

// UpdateBudget replaces the budget with the same ID.
type UpdateBudget struct {
	Budget model.Budget
}

// DeleteBudget removes a budget by ID.
type DeleteBudget struct {
	ID string
}

// AddCategory appends a category. Categories are never updated or deleted.
type AddCategory struct {
	Category model.Category
}

// AddBeneficiary appends a beneficiary record.
type AddBeneficiary struct {
	Beneficiary model.Beneficiary
}

// AddAutoRule appends an auto-categorization rule. An existing rule with
// the same term is retargeted to the new category and its frequency bumped.
type AddAutoRule struct {
	Rule model.AutoRule
}

// ToggleHiddenBalances flips the global hide-balances flag.
type ToggleHiddenBalances struct{}

// SetShowSamples controls whether placeholder transactions are shown while
// the real collection is empty.
type SetShowSamples struct {
	Show bool
}

// CompleteOnboarding switches to the dashboard and marks onboarding done.
type CompleteOnboarding struct{}

// LoadState replaces the entire snapshot wholesale. Used by the
// persistence adapter at startup.
type LoadState struct {
	Snapshot Snapshot
}

func (SetView) isOp()              {}
func (SetOnboardingStep) isOp()    {}
func (ToggleMenu) isOp()           {}
func (CloseMenu) isOp()            {}
func (SetPreferences) isOp()       {}
func (SetSubscription) isOp()      {}
func (AddWallet) isOp()            {}
func (UpdateWallet) isOp()         {}
func (DeleteWallet) isOp()         {}
func (SetDefaultWallet) isOp()     {}
func (AddTransaction) isOp()       {}
func (UpdateTransaction) isOp()    {}
func (DeleteTransaction) isOp()    {}
func (RecordTransaction) isOp()    {}
func (AddBill) isOp()              {}
func (UpdateBill) isOp()           {}
func (DeleteBill) isOp()           {}
func (PayBill) isOp()              {}
func (AddBudget) isOp()            {}
func (UpdateBudget) isOp()         {}
func (DeleteBudget) isOp()         {}
func (AddCategory) isOp()          {}
func (AddBeneficiary) isOp()       {}
func (AddAutoRule) isOp()          {}
func (ToggleHiddenBalances) isOp() {}
func (SetShowSamples) isOp()       {}
func (CompleteOnboarding) isOp()   {}
func (LoadState) isOp()            {}
