package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func TestCanCreateWallet(t *testing.T) {
	tests := []struct {
		name    string
		plan    model.Plan
		wallets int
		want    bool
	}{
		{name: "free under the cap", plan: model.PlanFree, wallets: 2, want: true},
		{name: "free at the cap", plan: model.PlanFree, wallets: 3, want: false},
		{name: "premium over the cap", plan: model.PlanPremium, wallets: 10, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state.DefaultSnapshot()
			s.Sub.Plan = tt.plan
			for i := 0; i < tt.wallets; i++ {
				s.Wallets = append(s.Wallets, model.Wallet{ID: model.NewID()})
			}
			assert.Equal(t, tt.want, CanCreateWallet(s))
		})
	}
}

func TestCanUseAdvancedReports(t *testing.T) {
	s := state.DefaultSnapshot()
	assert.False(t, CanUseAdvancedReports(s))

	s.Sub.TrialActive = true
	assert.True(t, CanUseAdvancedReports(s), "active trial unlocks reports")

	s.Sub.TrialActive = false
	s.Sub.Plan = model.PlanPremium
	assert.True(t, CanUseAdvancedReports(s))
}
