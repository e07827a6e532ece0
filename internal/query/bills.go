package query

import (
	"time"

	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// upcomingWindow is how far ahead a pending bill counts as upcoming.
const upcomingWindow = 7 * 24 * time.Hour

// OverdueBills returns pending bills whose due date is strictly before now.
func OverdueBills(s state.Snapshot, now time.Time) []model.Bill {
	var out []model.Bill
	for _, b := range s.Bills {
		if b.Overdue(now) {
			out = append(out, b)
		}
	}
	return out
}

// UpcomingBills returns pending bills due within the next 7 days,
// inclusive of now.
func UpcomingBills(s state.Snapshot, now time.Time) []model.Bill {
	horizon := now.Add(upcomingWindow)
	var out []model.Bill
	for _, b := range s.Bills {
		if b.Status != model.BillPending {
			continue
		}
		if !b.DueDate.Before(now) && !b.DueDate.After(horizon) {
			out = append(out, b)
		}
	}
	return out
}

// BillsDueForReminder returns pending bills inside their own reminder
// lead time, honoring the global bill-reminder preference.
func BillsDueForReminder(s state.Snapshot, now time.Time) []model.Bill {
	if !s.Prefs.Notifications.BillReminders {
		return nil
	}
	var out []model.Bill
	for _, b := range s.Bills {
		if b.Status != model.BillPending || b.DueDate.Before(now) {
			continue
		}
		lead := b.RemindDays
		if lead == 0 {
			lead = s.Prefs.Notifications.ReminderDays
		}
		if !b.DueDate.After(now.Add(time.Duration(lead) * 24 * time.Hour)) {
			out = append(out, b)
		}
	}
	return out
}
