package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12.50", want: 12.50},
		{in: " 100 ", want: 100},
		{in: "0", want: 0},
		{in: "-5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), got)

	today, err := parseDate("today")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), today, time.Minute)

	empty, err := parseDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), empty, time.Minute)

	_, err = parseDate("15/08/2026")
	assert.Error(t, err)
}

func TestMonthFlags(t *testing.T) {
	m, y, err := monthFlags(3, 2025)
	require.NoError(t, err)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 2025, y)

	// Zero means unset and resolves to the current month.
	m, y, err = monthFlags(0, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Month(), m)
	assert.Equal(t, time.Now().Year(), y)

	_, _, err = monthFlags(13, 2025)
	assert.Error(t, err)

	_, _, err = monthFlags(-1, 2025)
	assert.Error(t, err)

	_, _, err = monthFlags(3, -2025)
	assert.Error(t, err)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890abcdef"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pet-care", slugify("Pet Care"))
	assert.Equal(t, "caf-snacks", slugify("Café & Snacks"))
	assert.Equal(t, "gifts", slugify("  Gifts  "))
}

func TestFindWallet(t *testing.T) {
	snap := state.DefaultSnapshot()
	snap.Wallets = []model.Wallet{
		{ID: "aaaa1111-0000", Name: "Checking"},
		{ID: "bbbb2222-0000", Name: "Savings"},
	}

	byID, ok := findWallet(snap, "aaaa1111-0000")
	require.True(t, ok)
	assert.Equal(t, "Checking", byID.Name)

	byPrefix, ok := findWallet(snap, "bbbb2222")
	require.True(t, ok)
	assert.Equal(t, "Savings", byPrefix.Name)

	byName, ok := findWallet(snap, "checking")
	require.True(t, ok)
	assert.Equal(t, "aaaa1111-0000", byName.ID)

	_, ok = findWallet(snap, "nope")
	assert.False(t, ok)
}

func TestCategoryByRef(t *testing.T) {
	snap := state.DefaultSnapshot()

	byID, ok := categoryByRef(snap, "food")
	require.True(t, ok)
	assert.Equal(t, "Food & Dining", byID.Name)

	byName, ok := categoryByRef(snap, "food & dining")
	require.True(t, ok)
	assert.Equal(t, "food", byName.ID)

	// No sentinel fallback at the validation boundary.
	_, ok = categoryByRef(snap, "definitely-not-a-category")
	assert.False(t, ok)
}
