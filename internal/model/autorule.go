package model

// AutoRule maps a description substring to a category for suggestion.
// Rules are advisory only; the suggestion is never applied without the
// user accepting it. Frequency counts accepted suggestions.
type AutoRule struct {
	Term       string `json:"term"`
	CategoryID string `json:"category_id"`
	Frequency  int    `json:"frequency"`
}

// DefaultAutoRules returns the rule set seeded on first run.
func DefaultAutoRules() []AutoRule {
	return []AutoRule{
		{Term: "starbucks", CategoryID: "food", Frequency: 12},
		{Term: "uber", CategoryID: "transport", Frequency: 8},
		{Term: "doordash", CategoryID: "food", Frequency: 15},
		{Term: "grocery", CategoryID: "food", Frequency: 20},
		{Term: "shell", CategoryID: "transport", Frequency: 6},
		{Term: "pharmacy", CategoryID: "health", Frequency: 5},
		{Term: "netflix", CategoryID: "leisure", Frequency: 10},
		{Term: "spotify", CategoryID: "leisure", Frequency: 8},
		{Term: "payroll", CategoryID: "salary", Frequency: 12},
	}
}
