package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureusfin/aureus/internal/model"
)

func TestDefaultSnapshot(t *testing.T) {
	s := DefaultSnapshot()

	assert.Equal(t, ViewOnboarding, s.View)
	assert.Len(t, s.Categories, 15)
	assert.Len(t, s.AutoRules, 9)
	assert.Len(t, s.Widgets, 5)
	assert.True(t, s.ShowSamples)
	assert.Empty(t, s.Wallets)
	assert.Equal(t, "USD", s.Prefs.Currency)
	assert.Equal(t, model.PlanFree, s.Sub.Plan)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := DefaultSnapshot()
	s.View = ViewDashboard
	s.Wallets = []model.Wallet{{ID: "w1", Name: "Checking", Balance: 1234.56, Currency: "USD", Default: true}}
	s.Transactions = []model.Transaction{{ID: "t1", Kind: model.Expense, Amount: 9.99, CategoryID: "food", WalletID: "w1"}}

	data, err := Encode(s)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snapshotJSON(t, s), snapshotJSON(t, got))
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	tests := []struct {
		name  string
		blob  string
		check func(t *testing.T, s Snapshot)
	}{
		{
			name: "missing collections are backfilled",
			blob: `{"view":"dashboard","wallets":[{"id":"w1","name":"Cash","balance":50}]}`,
			check: func(t *testing.T, s Snapshot) {
				assert.Equal(t, ViewDashboard, s.View)
				require.Len(t, s.Wallets, 1)
				assert.Len(t, s.Categories, 15, "categories backfilled from defaults")
				assert.Len(t, s.AutoRules, 9, "auto rules backfilled from defaults")
			},
		},
		{
			name: "explicit null collections are backfilled",
			blob: `{"view":"dashboard","categories":null,"auto_rules":null,"widgets":null}`,
			check: func(t *testing.T, s Snapshot) {
				assert.Len(t, s.Categories, 15)
				assert.Len(t, s.AutoRules, 9)
				assert.Len(t, s.Widgets, 5)
				assert.Equal(t, model.CategoryOther, s.Category(model.CategoryOther).ID, "sentinel survives a null collection")
			},
		},
		{
			name: "empty object yields defaults on onboarding",
			blob: `{}`,
			check: func(t *testing.T, s Snapshot) {
				assert.Equal(t, ViewOnboarding, s.View)
				assert.Equal(t, "en-US", s.Prefs.Locale)
			},
		},
		{
			name: "persisted fields win over defaults",
			blob: `{"prefs":{"currency":"EUR","locale":"de-DE"},"show_samples":false}`,
			check: func(t *testing.T, s Snapshot) {
				assert.Equal(t, "EUR", s.Prefs.Currency)
				assert.Equal(t, "de-DE", s.Prefs.Locale)
				assert.False(t, s.ShowSamples)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode([]byte(tt.blob))
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestDecodeCorruptBlob(t *testing.T) {
	_, err := Decode([]byte(`{"view":`))
	assert.Error(t, err)
}

func TestCategoryLookup(t *testing.T) {
	s := DefaultSnapshot()

	assert.Equal(t, "Food & Dining", s.Category("food").Name)
	assert.Equal(t, model.CategoryOther, s.Category("deleted-long-ago").ID, "unknown ids fall back to the sentinel")
	assert.Equal(t, "Transfer", s.Category(model.CategoryTransfer).Name)

	// The fallback is an ID lookup, not a positional one: it survives
	// reordering of the category collection.
	s.Categories = append([]model.Category{}, s.Categories...)
	s.Categories[0], s.Categories[9] = s.Categories[9], s.Categories[0]
	assert.Equal(t, model.CategoryOther, s.Category("deleted-long-ago").ID)
}

func TestDefaultWallet(t *testing.T) {
	s := DefaultSnapshot()

	_, ok := s.DefaultWallet()
	assert.False(t, ok)

	s.Wallets = []model.Wallet{{ID: "w1"}, {ID: "w2"}}
	w, ok := s.DefaultWallet()
	require.True(t, ok)
	assert.Equal(t, "w1", w.ID, "first wallet when none is flagged")

	s.Wallets[1].Default = true
	w, ok = s.DefaultWallet()
	require.True(t, ok)
	assert.Equal(t, "w2", w.ID)
}

func TestBudgetForCategory(t *testing.T) {
	s := DefaultSnapshot()
	s.Budgets = []model.Budget{{ID: "b1", CategoryID: "food", Limit: 300}}

	b, ok := s.BudgetForCategory("food")
	require.True(t, ok)
	assert.Equal(t, "b1", b.ID)

	_, ok = s.BudgetForCategory("transport")
	assert.False(t, ok)
}
