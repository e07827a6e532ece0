package query

import (
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// CanCreateWallet reports whether another wallet may be created.
// Premium has no cap; the free plan is limited to model.FreeWalletLimit.
func CanCreateWallet(s state.Snapshot) bool {
	if s.Sub.Plan == model.PlanPremium {
		return true
	}
	return len(s.Wallets) < model.FreeWalletLimit
}

// CanUseAdvancedReports reports whether advanced reports are unlocked:
// premium plan or an active trial.
func CanUseAdvancedReports(s state.Snapshot) bool {
	return s.Sub.Plan == model.PlanPremium || s.Sub.TrialActive
}
