package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aureusfin/aureus/internal/currency"
	"github.com/aureusfin/aureus/internal/persist"
	"github.com/aureusfin/aureus/internal/state"
)

// snapshotPort is what the CLI needs from a persistence adapter.
type snapshotPort interface {
	state.Port
	Close() error
}

// openStore builds the configured persistence adapter and rehydrates the
// state store from it. Callers must Close the returned port.
func openStore(ctx context.Context) (*state.Store, snapshotPort, error) {
	port, err := openPort()
	if err != nil {
		return nil, nil, err
	}
	return state.Open(ctx, port), port, nil
}

func openPort() (snapshotPort, error) {
	backend := viper.GetString("storage.backend")
	if backend == "" {
		backend = "sqlite"
	}

	path := viper.GetString("storage.path")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir := filepath.Join(home, ".local", "share", "aureus")
		switch backend {
		case "sqlite":
			path = filepath.Join(dir, "aureus.db")
		default:
			path = filepath.Join(dir, "snapshot.json")
		}
	}

	switch backend {
	case "sqlite":
		return persist.NewSQLiteStore(path)
	case "file":
		return persist.NewFileStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want file or sqlite)", backend)
	}
}

// formatter builds the currency formatter for the snapshot's locale.
func formatter(snap state.Snapshot) *currency.Formatter {
	return currency.NewFormatter(snap.Prefs.Locale)
}

// parseAmount parses a positive decimal amount from a CLI argument.
func parseAmount(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", arg)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount cannot be negative: %s", arg)
	}
	return v, nil
}

// parseDate accepts YYYY-MM-DD, or "today".
func parseDate(arg string) (time.Time, error) {
	if arg == "" || strings.EqualFold(arg, "today") {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return t, nil
}

// monthFlags resolves --month/--year flags, defaulting to the current
// calendar month. Zero means "not set"; anything else out of range is an
// error rather than a silent fallback.
func monthFlags(month, year int) (time.Month, int, error) {
	now := time.Now()
	m := now.Month()
	y := now.Year()
	if month != 0 {
		if month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("invalid month %d (want 1-12)", month)
		}
		m = time.Month(month)
	}
	if year != 0 {
		if year < 0 {
			return 0, 0, fmt.Errorf("invalid year %d", year)
		}
		y = year
	}
	return m, y, nil
}

// shortID abbreviates an entity ID for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
