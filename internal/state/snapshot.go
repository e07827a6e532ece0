// Package state holds the application snapshot and the reducer store that
// advances it. The snapshot is the complete in-memory application state; the
// fixed operation set in ops.go is the only mutation path.
package state

import (
	"encoding/json"
	"fmt"

	"github.com/aureusfin/aureus/internal/model"
)

// View identifies the screen the UI is showing.
type View string

// Views.
const (
	ViewOnboarding    View = "onboarding"
	ViewDashboard     View = "dashboard"
	ViewTransactions  View = "transactions"
	ViewBudgets       View = "budgets"
	ViewReports       View = "reports"
	ViewBills         View = "bills"
	ViewSettings      View = "settings"
	ViewSubscription  View = "subscription"
	ViewWallets       View = "wallets"
	ViewCategories    View = "categories"
	ViewBeneficiaries View = "beneficiaries"
)

// Snapshot is the complete application state at a point in time.
// It is advanced only through Reduce and serialized wholesale by the
// persistence adapter.
type Snapshot struct {
	View           View                `json:"view"`
	OnboardingStep int                 `json:"onboarding_step"`
	MenuOpen       bool                `json:"menu_open"`
	Prefs          model.Preferences   `json:"prefs"`
	Sub            model.Subscription  `json:"subscription"`
	Wallets        []model.Wallet      `json:"wallets"`
	Transactions   []model.Transaction `json:"transactions"`
	Bills          []model.Bill        `json:"bills"`
	Budgets        []model.Budget      `json:"budgets"`
	Categories     []model.Category    `json:"categories"`
	Beneficiaries  []model.Beneficiary `json:"beneficiaries"`
	Widgets        []model.Widget      `json:"widgets"`
	HiddenBalances bool                `json:"hidden_balances"`
	AutoRules      []model.AutoRule    `json:"auto_rules"`
	ShowSamples    bool                `json:"show_samples"`
}

// DefaultSnapshot returns the built-in initial state: onboarding view,
// seeded categories, auto-categorization rules, and dashboard widgets.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		View:        ViewOnboarding,
		Prefs:       model.DefaultPreferences(),
		Sub:         model.DefaultSubscription(),
		Categories:  model.DefaultCategories(),
		Widgets:     model.DefaultWidgets(),
		AutoRules:   model.DefaultAutoRules(),
		ShowSamples: true,
	}
}

// Encode serializes the snapshot for the persistence adapter.
func Encode(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode deserializes a persisted blob, merging it over the built-in
// defaults so fields added after the blob was written are backfilled.
// The persisted view is preserved; a blob without one lands on onboarding.
func Decode(data []byte) (Snapshot, error) {
	snap := DefaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	// An explicit JSON null nils a prefilled slice; the seeded collections
	// must come back as defaults in that case too, or the sentinel
	// categories disappear.
	defaults := DefaultSnapshot()
	if snap.Categories == nil {
		snap.Categories = defaults.Categories
	}
	if snap.AutoRules == nil {
		snap.AutoRules = defaults.AutoRules
	}
	if snap.Widgets == nil {
		snap.Widgets = defaults.Widgets
	}
	if snap.View == "" {
		snap.View = ViewOnboarding
	}
	return snap, nil
}

// Category resolves a category by ID, falling back to the sentinel
// "other" category when the ID is unknown. The fallback is an explicit
// ID lookup, never a positional guess.
func (s Snapshot) Category(id string) model.Category {
	for _, c := range s.Categories {
		if c.ID == id {
			return c
		}
	}
	if id == model.CategoryTransfer {
		return model.Category{ID: model.CategoryTransfer, Name: "Transfer", Icon: "arrow-left-right", Kind: model.KindExpense}
	}
	for _, c := range s.Categories {
		if c.ID == model.CategoryOther {
			return c
		}
	}
	return model.Category{ID: model.CategoryOther, Name: "Other", Kind: model.KindExpense}
}

// Wallet resolves a wallet by ID.
func (s Snapshot) Wallet(id string) (model.Wallet, bool) {
	for _, w := range s.Wallets {
		if w.ID == id {
			return w, true
		}
	}
	return model.Wallet{}, false
}

// Bill resolves a bill by ID.
func (s Snapshot) Bill(id string) (model.Bill, bool) {
	for _, b := range s.Bills {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bill{}, false
}

// Budget resolves a budget by ID.
func (s Snapshot) Budget(id string) (model.Budget, bool) {
	for _, b := range s.Budgets {
		if b.ID == id {
			return b, true
		}
	}
	return model.Budget{}, false
}

// BudgetForCategory resolves a budget by its category.
func (s Snapshot) BudgetForCategory(categoryID string) (model.Budget, bool) {
	for _, b := range s.Budgets {
		if b.CategoryID == categoryID {
			return b, true
		}
	}
	return model.Budget{}, false
}

// DefaultWallet returns the wallet flagged as default, or the first wallet
// when none is flagged.
func (s Snapshot) DefaultWallet() (model.Wallet, bool) {
	for _, w := range s.Wallets {
		if w.Default {
			return w, true
		}
	}
	if len(s.Wallets) > 0 {
		return s.Wallets[0], true
	}
	return model.Wallet{}, false
}
