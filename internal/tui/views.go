package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/query"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	for i, kind := range m.sections {
		b.WriteString(m.renderSection(kind, i == m.section))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderHeader() string {
	now := m.now()
	total := m.fmt.FormatOrMask(query.TotalBalance(m.snap), m.snap.Prefs.Currency, m.hidden())
	sum := query.SummarizeMonth(m.snap, now.Month(), now.Year())

	name := m.snap.Prefs.Name
	if name == "" {
		name = "there"
	}

	title := cli.TitleStyle.Render(fmt.Sprintf("Hello, %s", name))
	balance := cli.BoldStyle.Render(fmt.Sprintf("Total balance: %s", total))
	flow := cli.SubtleStyle.Render(fmt.Sprintf("This month: %s in / %s out",
		m.fmt.FormatOrMask(sum.Income, m.snap.Prefs.Currency, m.hidden()),
		m.fmt.FormatOrMask(sum.Expenses, m.snap.Prefs.Currency, m.hidden())))

	return lipgloss.JoinVertical(lipgloss.Left, title, balance, flow)
}

func (m Model) renderSection(kind model.WidgetKind, active bool) string {
	var title, body string
	switch kind {
	case model.WidgetWallets:
		title, body = "Wallets", m.renderWallets()
	case model.WidgetBudgets:
		title, body = "Budgets", m.renderBudgets()
	case model.WidgetTransactions:
		title, body = "Recent transactions", m.renderTransactions()
	case model.WidgetBills:
		title, body = "Bills", m.renderBills()
	case model.WidgetCategorySpend:
		title, body = "Spending by category", m.renderCategorySpend()
	default:
		return ""
	}

	header := cli.SubtitleStyle.Render(title)
	if active {
		header = cli.BoldStyle.Foreground(cli.PrimaryColor).Render("▸ " + title)
	}
	return header + "\n" + body
}

func (m Model) renderWallets() string {
	if len(m.snap.Wallets) == 0 {
		return cli.SubtleStyle.Render("  No wallets yet. Run 'aureus wallets add'.")
	}
	var lines []string
	for _, w := range m.snap.Wallets {
		balance := m.fmt.FormatOrMask(w.Balance, w.Currency, m.hidden() || w.HideBalance)
		marker := "  "
		if w.Default {
			marker = cli.InfoStyle.Render("★ ")
		}
		lines = append(lines, fmt.Sprintf("%s%-20s %s", marker, w.Name, balance))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBudgets() string {
	if len(m.snap.Budgets) == 0 {
		return cli.SubtleStyle.Render("  No budgets set.")
	}
	var lines []string
	for _, budget := range m.snap.Budgets {
		p := query.BudgetProgress(m.snap, budget.ID, m.now())
		cat := m.snap.Category(budget.CategoryID)
		line := fmt.Sprintf("  %-16s %s %s", cat.Name, cli.ProgressBar(p.Percent, 16),
			m.fmt.FormatOrMask(p.Used, m.snap.Prefs.Currency, m.hidden()))
		if p.Overspent {
			line += " " + cli.ErrorStyle.Render("over budget")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTransactions() string {
	txs := query.VisibleTransactions(m.snap, m.now())
	if len(txs) == 0 {
		return cli.SubtleStyle.Render("  No transactions yet.")
	}
	if len(txs) > 5 {
		txs = txs[:5]
	}
	var lines []string
	for _, t := range txs {
		amount := m.fmt.FormatOrMask(t.Amount, m.snap.Prefs.Currency, m.hidden())
		switch t.Kind {
		case model.Income:
			amount = cli.SuccessStyle.Render("+" + amount)
		case model.Expense:
			amount = cli.ErrorStyle.Render("-" + amount)
		}
		lines = append(lines, fmt.Sprintf("  %s  %-24s %s",
			t.Date.Format("Jan 02"), t.Description, amount))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBills() string {
	now := m.now()
	overdue := query.OverdueBills(m.snap, now)
	upcoming := query.UpcomingBills(m.snap, now)
	if len(overdue) == 0 && len(upcoming) == 0 {
		return cli.SubtleStyle.Render("  Nothing due in the next 7 days.")
	}
	var lines []string
	for _, b := range overdue {
		lines = append(lines, fmt.Sprintf("  %s %-24s due %s",
			cli.ErrorStyle.Render("overdue"), b.Description, b.DueDate.Format("Jan 02")))
	}
	for _, b := range upcoming {
		lines = append(lines, fmt.Sprintf("  %s %-24s due %s",
			cli.WarningStyle.Render("soon   "), b.Description, b.DueDate.Format("Jan 02")))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCategorySpend() string {
	now := m.now()
	spend := query.SpendByCategory(m.snap, now.Month(), now.Year())
	if len(spend) == 0 {
		return cli.SubtleStyle.Render("  No expenses this month.")
	}
	var lines []string
	for _, cs := range spend {
		lines = append(lines, fmt.Sprintf("  %-16s %s", cs.Category.Name,
			m.fmt.FormatOrMask(cs.Amount, m.snap.Prefs.Currency, m.hidden())))
	}
	return strings.Join(lines, "\n")
}
