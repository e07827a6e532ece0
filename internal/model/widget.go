package model

// WidgetKind identifies a dashboard section.
type WidgetKind string

// Dashboard widget kinds.
const (
	WidgetWallets       WidgetKind = "wallets"
	WidgetBudgets       WidgetKind = "budgets"
	WidgetTransactions  WidgetKind = "transactions"
	WidgetBills         WidgetKind = "bills"
	WidgetCategorySpend WidgetKind = "category_spend"
)

// Widget is one configurable row of the dashboard layout.
type Widget struct {
	ID      string     `json:"id"`
	Kind    WidgetKind `json:"kind"`
	Visible bool       `json:"visible"`
	Order   int        `json:"order"`
}

// DefaultWidgets returns the dashboard layout seeded on first run.
func DefaultWidgets() []Widget {
	return []Widget{
		{ID: "1", Kind: WidgetWallets, Visible: true, Order: 1},
		{ID: "2", Kind: WidgetBudgets, Visible: true, Order: 2},
		{ID: "3", Kind: WidgetTransactions, Visible: true, Order: 3},
		{ID: "4", Kind: WidgetBills, Visible: true, Order: 4},
		{ID: "5", Kind: WidgetCategorySpend, Visible: true, Order: 5},
	}
}
