package model

// BudgetPeriod is the window a budget limit applies to.
// Progress tracking currently uses the calendar month regardless.
type BudgetPeriod string

// Budget periods.
const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending cap on one category with an alert threshold.
// At most one budget exists per category; the input boundary enforces this.
type Budget struct {
	ID           string       `json:"id"`
	CategoryID   string       `json:"category_id"`
	Limit        float64      `json:"limit"`
	Period       BudgetPeriod `json:"period"`
	AlertPercent int          `json:"alert_percent"`
}
