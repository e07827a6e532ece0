package state

import "github.com/aureusfin/aureus/internal/model"

// Reduce applies one operation to a snapshot and returns the result.
// It never mutates its input: collections that change are copied first.
// Operations Reduce does not recognize return the input unchanged.
func Reduce(s Snapshot, op Op) Snapshot {
	switch op := op.(type) {
	case SetView:
		s.View = op.View
		s.MenuOpen = false
	case SetOnboardingStep:
		s.OnboardingStep = op.Step
	case ToggleMenu:
		s.MenuOpen = !s.MenuOpen
	case CloseMenu:
		s.MenuOpen = false
	case SetPreferences:
		s.Prefs = mergePreferences(s.Prefs, op)
	case SetSubscription:
		s.Sub = mergeSubscription(s.Sub, op)
	case AddWallet:
		s.Wallets = appended(s.Wallets, op.Wallet)
	case UpdateWallet:
		s.Wallets = replaced(s.Wallets, op.Wallet, func(w model.Wallet) string { return w.ID })
	case DeleteWallet:
		s.Wallets = removed(s.Wallets, op.ID, func(w model.Wallet) string { return w.ID })
	case SetDefaultWallet:
		wallets := make([]model.Wallet, len(s.Wallets))
		for i, w := range s.Wallets {
			w.Default = w.ID == op.ID
			wallets[i] = w
		}
		s.Wallets = wallets
	case AddTransaction:
		s.Transactions = prepended(s.Transactions, op.Transaction)
	case UpdateTransaction:
		s.Transactions = replaced(s.Transactions, op.Transaction, func(t model.Transaction) string { return t.ID })
	case DeleteTransaction:
		s.Transactions = removed(s.Transactions, op.ID, func(t model.Transaction) string { return t.ID })
	case RecordTransaction:
		s = recordTransaction(s, op.Transaction)
	case AddBill:
		s.Bills = appended(s.Bills, op.Bill)
	case UpdateBill:
		s.Bills = replaced(s.Bills, op.Bill, func(b model.Bill) string { return b.ID })
	case DeleteBill:
		s.Bills = removed(s.Bills, op.ID, func(b model.Bill) string { return b.ID })
	case PayBill:
		s = payBill(s, op)
	case AddBudget:
		s.Budgets = appended(s.Budgets, op.Budget)
	case UpdateBudget:
		s.Budgets = replaced(s.Budgets, op.Budget, func(b model.Budget) string { return b.ID })
	case DeleteBudget:
		s.Budgets = removed(s.Budgets, op.ID, func(b model.Budget) string { return b.ID })
	case AddCategory:
		s.Categories = appended(s.Categories, op.Category)
	case AddBeneficiary:
		s.Beneficiaries = appended(s.Beneficiaries, op.Beneficiary)
	case AddAutoRule:
		s.AutoRules = upsertRule(s.AutoRules, op.Rule)
	case ToggleHiddenBalances:
		s.HiddenBalances = !s.HiddenBalances
	case SetShowSamples:
		s.ShowSamples = op.Show
	case CompleteOnboarding:
		s.View = ViewDashboard
		s.OnboardingStep = 3
	case LoadState:
		s = op.Snapshot
	default:
		// Unknown operations are silently ignored.
	}
	return s
}

// recordTransaction prepends the transaction and applies its wallet
// balance deltas in the same step.
func recordTransaction(s Snapshot, tx model.Transaction) Snapshot {
	s.Transactions = prepended(s.Transactions, tx)
	switch tx.Kind {
	case model.Expense:
		s.Wallets = adjustBalance(s.Wallets, tx.WalletID, -tx.Amount)
	case model.Income:
		s.Wallets = adjustBalance(s.Wallets, tx.WalletID, tx.Amount)
	case model.TransferKind:
		s.Wallets = adjustBalance(s.Wallets, tx.WalletID, -tx.Amount)
		s.Wallets = adjustBalance(s.Wallets, tx.ToWalletID, tx.Amount)
	}
	return s
}

// payBill marks the bill paid, records the matching expense transaction,
// and debits the bill's wallet. Missing or already-paid bills are no-ops.
func payBill(s Snapshot, op PayBill) Snapshot {
	bill, ok := s.Bill(op.BillID)
	if !ok || bill.Status == model.BillPaid {
		return s
	}
	bill.Status = model.BillPaid
	s.Bills = replaced(s.Bills, bill, func(b model.Bill) string { return b.ID })
	return recordTransaction(s, model.Transaction{
		ID:          op.TxID,
		Kind:        model.Expense,
		Amount:      bill.Amount,
		Description: bill.Description,
		CategoryID:  bill.CategoryID,
		WalletID:    bill.WalletID,
		Date:        op.PaidAt,
		Status:      model.StatusCompleted,
		Notes:       bill.Notes,
	})
}

func mergePreferences(p model.Preferences, op SetPreferences) model.Preferences {
	if op.Name != nil {
		p.Name = *op.Name
	}
	if op.Email != nil {
		p.Email = *op.Email
	}
	if op.Currency != nil {
		p.Currency = *op.Currency
	}
	if op.Locale != nil {
		p.Locale = *op.Locale
	}
	if op.Theme != nil {
		p.Theme = *op.Theme
	}
	if op.FontSize != nil {
		p.FontSize = *op.FontSize
	}
	if op.Biometrics != nil {
		p.Biometrics = *op.Biometrics
	}
	if op.PINLock != nil {
		p.PINLock = *op.PINLock
	}
	if op.HideBalances != nil {
		p.HideBalances = *op.HideBalances
	}
	if op.AutoBackup != nil {
		p.AutoBackup = *op.AutoBackup
	}
	if op.BackupFrequency != nil {
		p.BackupFrequency = *op.BackupFrequency
	}
	if op.Notifications != nil {
		p.Notifications = *op.Notifications
	}
	return p
}

func mergeSubscription(sub model.Subscription, op SetSubscription) model.Subscription {
	if op.Plan != nil {
		sub.Plan = *op.Plan
	}
	if op.TrialActive != nil {
		sub.TrialActive = *op.TrialActive
	}
	if op.TrialDaysLeft != nil {
		sub.TrialDaysLeft = *op.TrialDaysLeft
	}
	if op.StartedAt != nil {
		sub.StartedAt = op.StartedAt
	}
	if op.ExpiresAt != nil {
		sub.ExpiresAt = op.ExpiresAt
	}
	return sub
}

func upsertRule(rules []model.AutoRule, rule model.AutoRule) []model.AutoRule {
	out := make([]model.AutoRule, len(rules))
	copy(out, rules)
	for i, r := range out {
		if r.Term == rule.Term {
			out[i].CategoryID = rule.CategoryID
			out[i].Frequency++
			return out
		}
	}
	return append(out, rule)
}

func adjustBalance(wallets []model.Wallet, id string, delta float64) []model.Wallet {
	out := make([]model.Wallet, len(wallets))
	copy(out, wallets)
	for i, w := range out {
		if w.ID == id {
			out[i].Balance += delta
			break
		}
	}
	return out
}

func appended[T any](xs []T, v T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, v)
}

func prepended[T any](xs []T, v T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, v)
	return append(out, xs...)
}

func replaced[T any](xs []T, v T, id func(T) string) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	for i, x := range out {
		if id(x) == id(v) {
			out[i] = v
		}
	}
	return out
}

func removed[T any](xs []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if id(x) != target {
			out = append(out, x)
		}
	}
	return out
}
