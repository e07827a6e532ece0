package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureusfin/aureus/internal/model"
)

// unknownOp is an op type Reduce has never heard of.
type unknownOp struct{}

func (unknownOp) isOp() {}

func testWallet(id string, balance float64) model.Wallet {
	return model.Wallet{ID: id, Name: id, Balance: balance, Currency: "USD"}
}

func TestReduceNavigation(t *testing.T) {
	s := DefaultSnapshot()
	s.MenuOpen = true

	s = Reduce(s, SetView{View: ViewBudgets})
	assert.Equal(t, ViewBudgets, s.View)
	assert.False(t, s.MenuOpen, "changing views must close the menu")

	s = Reduce(s, ToggleMenu{})
	assert.True(t, s.MenuOpen)
	s = Reduce(s, ToggleMenu{})
	assert.False(t, s.MenuOpen)

	s.MenuOpen = true
	s = Reduce(s, CloseMenu{})
	assert.False(t, s.MenuOpen)

	s = Reduce(s, SetOnboardingStep{Step: 2})
	assert.Equal(t, 2, s.OnboardingStep)

	s = Reduce(s, CompleteOnboarding{})
	assert.Equal(t, ViewDashboard, s.View)
}

func TestReduceUnknownOpIsNoOp(t *testing.T) {
	s := DefaultSnapshot()
	s.Wallets = []model.Wallet{testWallet("w1", 100)}

	got := Reduce(s, unknownOp{})
	assert.Equal(t, s, got)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := DefaultSnapshot()
	s.Wallets = []model.Wallet{testWallet("w1", 100)}
	s.Transactions = []model.Transaction{{ID: "t1", Description: "first"}}

	before := snapshotJSON(t, s)

	_ = Reduce(s, RecordTransaction{Transaction: model.Transaction{
		ID: "t2", Kind: model.Expense, Amount: 40, WalletID: "w1",
	}})
	_ = Reduce(s, DeleteTransaction{ID: "t1"})
	_ = Reduce(s, SetDefaultWallet{ID: "w1"})

	assert.Equal(t, before, snapshotJSON(t, s), "input snapshot must be unchanged")
}

// snapshotJSON serializes a snapshot for structural comparison.
func snapshotJSON(t *testing.T, s Snapshot) string {
	t.Helper()
	data, err := Encode(s)
	require.NoError(t, err)
	return string(data)
}

func TestReduceTransactionOrder(t *testing.T) {
	s := DefaultSnapshot()
	s = Reduce(s, AddTransaction{Transaction: model.Transaction{ID: "t1"}})
	s = Reduce(s, AddTransaction{Transaction: model.Transaction{ID: "t2"}})
	s = Reduce(s, RecordTransaction{Transaction: model.Transaction{ID: "t3"}})

	require.Len(t, s.Transactions, 3)
	assert.Equal(t, "t3", s.Transactions[0].ID, "newest first")
	assert.Equal(t, "t2", s.Transactions[1].ID)
	assert.Equal(t, "t1", s.Transactions[2].ID)
}

func TestRecordTransactionBalances(t *testing.T) {
	tests := []struct {
		name     string
		tx       model.Transaction
		wantFrom float64
		wantTo   float64
	}{
		{
			name:     "expense debits the wallet",
			tx:       model.Transaction{ID: "t1", Kind: model.Expense, Amount: 40, WalletID: "from"},
			wantFrom: 60,
			wantTo:   200,
		},
		{
			name:     "income credits the wallet",
			tx:       model.Transaction{ID: "t1", Kind: model.Income, Amount: 40, WalletID: "from"},
			wantFrom: 140,
			wantTo:   200,
		},
		{
			name:     "transfer moves between wallets",
			tx:       model.Transaction{ID: "t1", Kind: model.TransferKind, Amount: 25, WalletID: "from", ToWalletID: "to"},
			wantFrom: 75,
			wantTo:   225,
		},
		{
			name:     "unknown wallet leaves balances alone",
			tx:       model.Transaction{ID: "t1", Kind: model.Expense, Amount: 40, WalletID: "nope"},
			wantFrom: 100,
			wantTo:   200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSnapshot()
			s.Wallets = []model.Wallet{testWallet("from", 100), testWallet("to", 200)}

			s = Reduce(s, RecordTransaction{Transaction: tt.tx})

			require.Len(t, s.Transactions, 1)
			from, _ := s.Wallet("from")
			to, _ := s.Wallet("to")
			assert.Equal(t, tt.wantFrom, from.Balance)
			assert.Equal(t, tt.wantTo, to.Balance)
		})
	}
}

func TestDeleteTransactionKeepsBalance(t *testing.T) {
	s := DefaultSnapshot()
	s.Wallets = []model.Wallet{testWallet("w1", 100)}
	s = Reduce(s, RecordTransaction{Transaction: model.Transaction{
		ID: "t1", Kind: model.Expense, Amount: 30, WalletID: "w1",
	}})
	s = Reduce(s, DeleteTransaction{ID: "t1"})

	assert.Empty(t, s.Transactions)
	w, _ := s.Wallet("w1")
	assert.Equal(t, 70.0, w.Balance, "deletion must not reverse the balance effect")
}

func TestSetDefaultWallet(t *testing.T) {
	s := DefaultSnapshot()
	w1 := testWallet("w1", 0)
	w1.Default = true
	s.Wallets = []model.Wallet{w1, testWallet("w2", 0), testWallet("w3", 0)}

	s = Reduce(s, SetDefaultWallet{ID: "w2"})

	var defaults int
	for _, w := range s.Wallets {
		if w.Default {
			defaults++
			assert.Equal(t, "w2", w.ID)
		}
	}
	assert.Equal(t, 1, defaults, "exactly one default wallet")
}

func TestPayBill(t *testing.T) {
	due := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	paidAt := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	base := func() Snapshot {
		s := DefaultSnapshot()
		s.Wallets = []model.Wallet{testWallet("w1", 500)}
		s.Bills = []model.Bill{{
			ID: "b1", Description: "Electricity", Amount: 120,
			DueDate: due, CategoryID: "utilities", WalletID: "w1",
			Status: model.BillPending,
		}}
		return s
	}

	t.Run("pays a pending bill atomically", func(t *testing.T) {
		s := Reduce(base(), PayBill{BillID: "b1", TxID: "t1", PaidAt: paidAt})

		bill, ok := s.Bill("b1")
		require.True(t, ok)
		assert.Equal(t, model.BillPaid, bill.Status)

		require.Len(t, s.Transactions, 1)
		tx := s.Transactions[0]
		assert.Equal(t, "t1", tx.ID)
		assert.Equal(t, model.Expense, tx.Kind)
		assert.Equal(t, 120.0, tx.Amount)
		assert.Equal(t, "utilities", tx.CategoryID)
		assert.Equal(t, paidAt, tx.Date)

		w, _ := s.Wallet("w1")
		assert.Equal(t, 380.0, w.Balance)
	})

	t.Run("missing bill is a no-op", func(t *testing.T) {
		s := base()
		got := Reduce(s, PayBill{BillID: "nope", TxID: "t1", PaidAt: paidAt})
		assert.Equal(t, s, got)
	})

	t.Run("already-paid bill is a no-op", func(t *testing.T) {
		s := base()
		s.Bills[0].Status = model.BillPaid
		got := Reduce(s, PayBill{BillID: "b1", TxID: "t1", PaidAt: paidAt})
		assert.Equal(t, s, got)
		assert.Empty(t, got.Transactions, "no second payment transaction")
	})
}

func TestSetPreferencesMergesOnlySetFields(t *testing.T) {
	s := DefaultSnapshot()
	name := "Ada"
	theme := model.ThemeDark

	s = Reduce(s, SetPreferences{Name: &name, Theme: &theme})

	assert.Equal(t, "Ada", s.Prefs.Name)
	assert.Equal(t, model.ThemeDark, s.Prefs.Theme)
	assert.Equal(t, "USD", s.Prefs.Currency, "unset fields keep their values")
	assert.Equal(t, 3, s.Prefs.Notifications.ReminderDays)
}

func TestSetSubscriptionMerge(t *testing.T) {
	s := DefaultSnapshot()
	active := true
	days := 14

	s = Reduce(s, SetSubscription{TrialActive: &active, TrialDaysLeft: &days})

	assert.Equal(t, model.PlanFree, s.Sub.Plan, "plan untouched")
	assert.True(t, s.Sub.TrialActive)
	assert.Equal(t, 14, s.Sub.TrialDaysLeft)
}

func TestAddAutoRule(t *testing.T) {
	s := DefaultSnapshot()
	seeded := len(s.AutoRules)

	s = Reduce(s, AddAutoRule{Rule: model.AutoRule{Term: "gym", CategoryID: "health", Frequency: 1}})
	require.Len(t, s.AutoRules, seeded+1)

	// Same term again bumps the frequency instead of duplicating.
	s = Reduce(s, AddAutoRule{Rule: model.AutoRule{Term: "gym", CategoryID: "health", Frequency: 1}})
	require.Len(t, s.AutoRules, seeded+1)
	assert.Equal(t, 2, s.AutoRules[seeded].Frequency)

	// Seeded terms bump too.
	s = Reduce(s, AddAutoRule{Rule: model.AutoRule{Term: "starbucks", CategoryID: "food", Frequency: 1}})
	require.Len(t, s.AutoRules, seeded+1)
	assert.Equal(t, 13, s.AutoRules[0].Frequency)

	// Re-adding a term with a different category retargets the rule.
	s = Reduce(s, AddAutoRule{Rule: model.AutoRule{Term: "gym", CategoryID: "entertainment", Frequency: 1}})
	require.Len(t, s.AutoRules, seeded+1)
	assert.Equal(t, "entertainment", s.AutoRules[seeded].CategoryID)
	assert.Equal(t, 3, s.AutoRules[seeded].Frequency)
}

func TestReduceCollections(t *testing.T) {
	s := DefaultSnapshot()

	s = Reduce(s, AddWallet{Wallet: testWallet("w1", 10)})
	s = Reduce(s, AddWallet{Wallet: testWallet("w2", 20)})
	require.Len(t, s.Wallets, 2)
	assert.Equal(t, "w1", s.Wallets[0].ID, "wallets append in order")

	renamed := testWallet("w1", 10)
	renamed.Name = "Checking"
	s = Reduce(s, UpdateWallet{Wallet: renamed})
	assert.Equal(t, "Checking", s.Wallets[0].Name)

	s = Reduce(s, DeleteWallet{ID: "w1"})
	require.Len(t, s.Wallets, 1)
	assert.Equal(t, "w2", s.Wallets[0].ID)

	s = Reduce(s, AddBudget{Budget: model.Budget{ID: "b1", CategoryID: "food", Limit: 300}})
	s = Reduce(s, UpdateBudget{Budget: model.Budget{ID: "b1", CategoryID: "food", Limit: 400}})
	b, ok := s.Budget("b1")
	require.True(t, ok)
	assert.Equal(t, 400.0, b.Limit)
	s = Reduce(s, DeleteBudget{ID: "b1"})
	assert.Empty(t, s.Budgets)

	before := len(s.Categories)
	s = Reduce(s, AddCategory{Category: model.Category{ID: "pets", Name: "Pets", Kind: model.KindExpense}})
	assert.Len(t, s.Categories, before+1)

	s = Reduce(s, AddBeneficiary{Beneficiary: model.Beneficiary{ID: "p1", Name: "Landlord"}})
	assert.Len(t, s.Beneficiaries, 1)
}

func TestReduceFlags(t *testing.T) {
	s := DefaultSnapshot()

	s = Reduce(s, ToggleHiddenBalances{})
	assert.True(t, s.HiddenBalances)
	s = Reduce(s, ToggleHiddenBalances{})
	assert.False(t, s.HiddenBalances)

	s = Reduce(s, SetShowSamples{Show: false})
	assert.False(t, s.ShowSamples)
}

func TestLoadStateReplacesWholesale(t *testing.T) {
	s := DefaultSnapshot()
	s.Wallets = []model.Wallet{testWallet("w1", 10)}

	replacement := DefaultSnapshot()
	replacement.View = ViewReports

	s = Reduce(s, LoadState{Snapshot: replacement})
	assert.Equal(t, ViewReports, s.View)
	assert.Empty(t, s.Wallets)
}
