package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"glade/internal/tui"
	"glade/internal/workspace"
)

// runDashboard opens the full-screen workspace dashboard.
func runDashboard(ctx *workspace.Context) error {
	p := tea.NewProgram(tui.New(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
