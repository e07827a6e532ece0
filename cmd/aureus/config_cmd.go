package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change preferences",
		Long: `Inspect and update the stored user preferences. These live in the data
file alongside your records, not in the YAML config, so they follow
your data across machines.`,
	}

	cmd.AddCommand(showConfigCmd())
	cmd.AddCommand(setConfigCmd())

	return cmd
}

func showConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			p := snap.Prefs

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			row := func(key, value string) {
				fmt.Fprintf(w, "%s\t%s\n", cli.BoldStyle.Render(key), value)
			}
			row("name", p.Name)
			row("currency", p.Currency)
			row("locale", p.Locale)
			row("theme", string(p.Theme))
			row("font-size", string(p.FontSize))
			row("hide-balances", strconv.FormatBool(p.HideBalances))
			row("auto-backup", strconv.FormatBool(p.AutoBackup))
			row("backup-frequency", string(p.BackupFrequency))
			row("bill-reminders", strconv.FormatBool(p.Notifications.BillReminders))
			row("reminder-days", strconv.Itoa(p.Notifications.ReminderDays))
			row("budget-alerts", strconv.FormatBool(p.Notifications.BudgetAlerts))
			row("alert-percent", strconv.Itoa(p.Notifications.AlertPercent))
			row("samples", strconv.FormatBool(snap.ShowSamples))
			return nil
		},
	}
}

func setConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Long: `Change one preference by key. Keys match 'aureus config show'. Boolean
keys take true or false.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key := strings.ToLower(args[0])
			value := args[1]

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()

			op, err := prefOp(snap, key, value)
			if err != nil {
				return err
			}

			store.Dispatch(ctx, op)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Set %s to %s", key, value)))
			return nil
		},
	}
}

// prefOp translates a key/value pair into the op that applies it.
func prefOp(snap state.Snapshot, key, value string) (state.Op, error) {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid value %q for %s (want true or false)", value, key)
		}
		return b, nil
	}

	switch key {
	case "name":
		return state.SetPreferences{Name: &value}, nil
	case "email":
		return state.SetPreferences{Email: &value}, nil
	case "currency":
		code := strings.ToUpper(strings.TrimSpace(value))
		if len(code) != 3 {
			return nil, fmt.Errorf("invalid currency code %q (want ISO 4217, e.g. USD)", value)
		}
		return state.SetPreferences{Currency: &code}, nil
	case "locale":
		return state.SetPreferences{Locale: &value}, nil
	case "theme":
		theme := model.Theme(value)
		switch theme {
		case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
			return state.SetPreferences{Theme: &theme}, nil
		}
		return nil, fmt.Errorf("invalid theme %q (want light, dark, or system)", value)
	case "font-size":
		size := model.FontSize(value)
		switch size {
		case model.FontSmall, model.FontNormal, model.FontLarge:
			return state.SetPreferences{FontSize: &size}, nil
		}
		return nil, fmt.Errorf("invalid font size %q (want small, normal, or large)", value)
	case "hide-balances":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return state.SetPreferences{HideBalances: &b}, nil
	case "auto-backup":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return state.SetPreferences{AutoBackup: &b}, nil
	case "backup-frequency":
		freq := model.Frequency(value)
		switch freq {
		case model.Daily, model.Weekly, model.Monthly:
			return state.SetPreferences{BackupFrequency: &freq}, nil
		}
		return nil, fmt.Errorf("invalid frequency %q (want daily, weekly, or monthly)", value)
	case "bill-reminders":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		n := snap.Prefs.Notifications
		n.BillReminders = b
		return state.SetPreferences{Notifications: &n}, nil
	case "reminder-days":
		days, err := strconv.Atoi(value)
		if err != nil || days < 0 || days > 30 {
			return nil, fmt.Errorf("invalid reminder-days %q (want 0-30)", value)
		}
		n := snap.Prefs.Notifications
		n.ReminderDays = days
		return state.SetPreferences{Notifications: &n}, nil
	case "budget-alerts":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		n := snap.Prefs.Notifications
		n.BudgetAlerts = b
		return state.SetPreferences{Notifications: &n}, nil
	case "alert-percent":
		pct, err := strconv.Atoi(value)
		if err != nil || pct < 50 || pct > 100 {
			return nil, fmt.Errorf("invalid alert-percent %q (want 50-100)", value)
		}
		n := snap.Prefs.Notifications
		n.AlertPercent = pct
		return state.SetPreferences{Notifications: &n}, nil
	case "samples":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return state.SetShowSamples{Show: b}, nil
	}
	return nil, fmt.Errorf("unknown preference key %q; see 'aureus config show'", key)
}
