// Package suggest maps free-text transaction descriptions to categories
// using the snapshot's auto-categorization rules.
package suggest

import (
	"strings"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// Suggestion is one rule hit resolved to its category.
type Suggestion struct {
	Rule     model.AutoRule
	Category model.Category
}

// Categorize lower-cases and trims the description and returns the first
// rule whose term is a substring. First match wins, in rule order; there
// is no scoring or ranking. A hit whose category no longer resolves is
// skipped rather than surfaced as a sentinel.
func Categorize(s state.Snapshot, description string) (Suggestion, bool) {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return Suggestion{}, false
	}

	for _, rule := range s.AutoRules {
		if rule.Term == "" || !strings.Contains(text, rule.Term) {
			continue
		}
		for _, c := range s.Categories {
			if c.ID == rule.CategoryID {
				return Suggestion{Rule: rule, Category: c}, true
			}
		}
		return Suggestion{}, false
	}
	return Suggestion{}, false
}

// Learn returns the op that reinforces an accepted suggestion: a new rule
// for the term, or a frequency bump when the term already has one.
func Learn(term, categoryID string) state.AddAutoRule {
	return state.AddAutoRule{Rule: model.AutoRule{
		Term:       strings.ToLower(strings.TrimSpace(term)),
		CategoryID: categoryID,
		Frequency:  1,
	}}
}
