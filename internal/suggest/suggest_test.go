package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func TestCategorize(t *testing.T) {
	s := state.DefaultSnapshot()

	tests := []struct {
		name         string
		description  string
		wantCategory string
		wantMatch    bool
	}{
		{name: "exact term", description: "starbucks", wantCategory: "food", wantMatch: true},
		{name: "substring with noise", description: "STARBUCKS STORE #1234", wantCategory: "food", wantMatch: true},
		{name: "case insensitive", description: "Uber Ride Home", wantCategory: "transport", wantMatch: true},
		{name: "leading whitespace", description: "  netflix.com  ", wantCategory: "leisure", wantMatch: true},
		{name: "income term", description: "ACME CORP PAYROLL", wantCategory: "salary", wantMatch: true},
		{name: "no rule matches", description: "mystery merchant", wantMatch: false},
		{name: "empty description", description: "", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Categorize(s, tt.description)
			require.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantCategory, got.Category.ID)
			}
		})
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	s := state.DefaultSnapshot()
	s.AutoRules = []model.AutoRule{
		{Term: "market", CategoryID: "food"},
		{Term: "farmers market", CategoryID: "shopping"},
	}

	got, ok := Categorize(s, "Farmers Market Stall 3")
	require.True(t, ok)
	assert.Equal(t, "food", got.Category.ID, "rule order decides, not specificity")
}

func TestCategorizeUnresolvableCategory(t *testing.T) {
	s := state.DefaultSnapshot()
	s.AutoRules = []model.AutoRule{{Term: "gym", CategoryID: "deleted-category"}}

	_, ok := Categorize(s, "gym membership")
	assert.False(t, ok, "a hit on a dead category is no suggestion at all")
}

func TestLearn(t *testing.T) {
	op := Learn("  Starbucks ", "food")
	assert.Equal(t, "starbucks", op.Rule.Term)
	assert.Equal(t, "food", op.Rule.CategoryID)
	assert.Equal(t, 1, op.Rule.Frequency)

	// Accepting a suggestion for a seeded term bumps its frequency.
	s := state.DefaultSnapshot()
	s = state.Reduce(s, op)
	assert.Len(t, s.AutoRules, 9)
	assert.Equal(t, 13, s.AutoRules[0].Frequency)
}
