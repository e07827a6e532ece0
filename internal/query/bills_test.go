package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func billsFixture(now time.Time) state.Snapshot {
	s := state.DefaultSnapshot()
	s.Bills = []model.Bill{
		{ID: "yesterday", Description: "Rent", Amount: 1500, DueDate: now.AddDate(0, 0, -1), Status: model.BillPending},
		{ID: "in3days", Description: "Power", Amount: 80, DueDate: now.AddDate(0, 0, 3), Status: model.BillPending},
		{ID: "in10days", Description: "Insurance", Amount: 120, DueDate: now.AddDate(0, 0, 10), Status: model.BillPending},
		{ID: "paid", Description: "Water", Amount: 40, DueDate: now.AddDate(0, 0, -2), Status: model.BillPaid},
	}
	return s
}

func billIDs(bills []model.Bill) []string {
	ids := make([]string, len(bills))
	for i, b := range bills {
		ids[i] = b.ID
	}
	return ids
}

func TestOverdueBills(t *testing.T) {
	now := august
	s := billsFixture(now)

	overdue := OverdueBills(s, now)
	assert.Equal(t, []string{"yesterday"}, billIDs(overdue), "paid bills are never overdue")
}

func TestUpcomingBills(t *testing.T) {
	now := august
	s := billsFixture(now)

	upcoming := UpcomingBills(s, now)
	assert.Equal(t, []string{"in3days"}, billIDs(upcoming), "overdue and far-future bills excluded")
}

func TestUpcomingBillsWindowEdges(t *testing.T) {
	now := august
	s := state.DefaultSnapshot()
	s.Bills = []model.Bill{
		{ID: "duenow", DueDate: now, Status: model.BillPending},
		{ID: "due7d", DueDate: now.AddDate(0, 0, 7), Status: model.BillPending},
		{ID: "due8d", DueDate: now.AddDate(0, 0, 8), Status: model.BillPending},
	}

	upcoming := UpcomingBills(s, now)
	assert.Equal(t, []string{"duenow", "due7d"}, billIDs(upcoming))
}

func TestBillsDueForReminder(t *testing.T) {
	now := august

	t.Run("uses the global lead time by default", func(t *testing.T) {
		s := billsFixture(now)
		require.Equal(t, 3, s.Prefs.Notifications.ReminderDays)

		due := BillsDueForReminder(s, now)
		assert.Equal(t, []string{"in3days"}, billIDs(due))
	})

	t.Run("per-bill lead time wins", func(t *testing.T) {
		s := billsFixture(now)
		s.Bills[2].RemindDays = 14

		due := BillsDueForReminder(s, now)
		assert.Equal(t, []string{"in3days", "in10days"}, billIDs(due))
	})

	t.Run("disabled reminders return nothing", func(t *testing.T) {
		s := billsFixture(now)
		s.Prefs.Notifications.BillReminders = false

		assert.Empty(t, BillsDueForReminder(s, now))
	})
}

func TestBillOverdue(t *testing.T) {
	now := august
	b := model.Bill{DueDate: now.AddDate(0, 0, -1), Status: model.BillPending}
	assert.True(t, b.Overdue(now))

	b.Status = model.BillPaid
	assert.False(t, b.Overdue(now))

	future := model.Bill{DueDate: now.AddDate(0, 0, 1), Status: model.BillPending}
	assert.False(t, future.Overdue(now))
}
