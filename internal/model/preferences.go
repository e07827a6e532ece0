package model

// Theme selects the UI color scheme.
type Theme string

// Themes.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// FontSize is the display text size tier.
type FontSize string

// Font sizes.
const (
	FontSmall  FontSize = "small"
	FontNormal FontSize = "normal"
	FontLarge  FontSize = "large"
)

// Notifications holds the notification sub-preferences.
type Notifications struct {
	BillReminders bool   `json:"bill_reminders"`
	ReminderDays  int    `json:"reminder_days"`
	BudgetAlerts  bool   `json:"budget_alerts"`
	AlertPercent  int    `json:"alert_percent"`
	Sound         bool   `json:"sound"`
	Time          string `json:"time"`
}

// Preferences holds the user's display and behavior settings.
type Preferences struct {
	Name            string        `json:"name"`
	Email           string        `json:"email,omitempty"`
	Currency        string        `json:"currency"`
	Locale          string        `json:"locale"`
	Theme           Theme         `json:"theme"`
	FontSize        FontSize      `json:"font_size"`
	Biometrics      bool          `json:"biometrics"`
	PINLock         bool          `json:"pin_lock"`
	HideBalances    bool          `json:"hide_balances"`
	AutoBackup      bool          `json:"auto_backup"`
	BackupFrequency Frequency     `json:"backup_frequency"`
	Notifications   Notifications `json:"notifications"`
}

// DefaultPreferences returns the preferences seeded on first run.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency:        "USD",
		Locale:          "en-US",
		Theme:           ThemeSystem,
		FontSize:        FontNormal,
		AutoBackup:      true,
		BackupFrequency: Daily,
		Notifications: Notifications{
			BillReminders: true,
			ReminderDays:  3,
			BudgetAlerts:  true,
			AlertPercent:  80,
			Sound:         true,
			Time:          "08:00",
		},
	}
}
