package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aureusfin/aureus/internal/state"
)

// Run starts the dashboard over the given store and blocks until quit.
func Run(store *state.Store) error {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
