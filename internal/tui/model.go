// Package tui renders the dashboard: balances, budgets, bills, and recent
// transactions, read from the snapshot through the derived-data queries.
// The only state it mutates is via store dispatch (hide-balances toggle).
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aureusfin/aureus/internal/currency"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

// Model holds the dashboard TUI state.
type Model struct {
	store    *state.Store
	snap     state.Snapshot
	fmt      *currency.Formatter
	now      func() time.Time
	keymap   KeyMap
	help     help.Model
	sections []model.WidgetKind
	section  int
	width    int
	height   int
	quitting bool
}

// NewModel creates the dashboard model over a store.
func NewModel(store *state.Store) Model {
	snap := store.Snapshot()
	return Model{
		store:    store,
		snap:     snap,
		fmt:      currency.NewFormatter(snap.Prefs.Locale),
		now:      time.Now,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		sections: visibleSections(snap),
	}
}

// visibleSections orders the dashboard sections by the persisted widget
// layout, skipping hidden widgets.
func visibleSections(snap state.Snapshot) []model.WidgetKind {
	widgets := make([]model.Widget, len(snap.Widgets))
	copy(widgets, snap.Widgets)
	for i := 0; i < len(widgets); i++ {
		for j := i + 1; j < len(widgets); j++ {
			if widgets[j].Order < widgets[i].Order {
				widgets[i], widgets[j] = widgets[j], widgets[i]
			}
		}
	}
	var kinds []model.WidgetKind
	for _, w := range widgets {
		if w.Visible {
			kinds = append(kinds, w.Kind)
		}
	}
	if len(kinds) == 0 {
		kinds = []model.WidgetKind{model.WidgetWallets}
	}
	return kinds
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case keyMatches(msg, m.keymap.NextSection):
			m.section = (m.section + 1) % len(m.sections)
			return m, nil
		case keyMatches(msg, m.keymap.PrevSection):
			m.section = (m.section - 1 + len(m.sections)) % len(m.sections)
			return m, nil
		case keyMatches(msg, m.keymap.ToggleBalances):
			m.snap = m.store.Dispatch(context.Background(), state.ToggleHiddenBalances{})
			return m, nil
		case keyMatches(msg, m.keymap.Refresh):
			m.snap = m.store.Snapshot()
			m.sections = visibleSections(m.snap)
			return m, nil
		case keyMatches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

// hidden reports whether balances should be masked, from either the
// global toggle or the preference flag.
func (m Model) hidden() bool {
	return m.snap.HiddenBalances || m.snap.Prefs.HideBalances
}
