package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"glade/internal/logger"
	"glade/internal/safety"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// printBlocked explains why a workspace cannot be removed, previews the
// commits at risk, and names the remediation options.
func printBlocked(w io.Writer, branch string, decision safety.Decision) {
	fmt.Fprintf(w, "%s %s\n", errStyle.Render("refusing to remove"), branch)
	for _, reason := range decision.Reasons {
		fmt.Fprintf(w, "  %s %s\n", errStyle.Render("•"), reason)
	}
	if len(decision.Preview) > 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("most recent unpushed commits:"))
		for _, c := range decision.Preview {
			fmt.Fprintf(w, "    %s %s\n", dimStyle.Render(c.Hash), c.Subject)
		}
	}
	fmt.Fprintln(w, "commit and push your work, then retry; or re-run with --force to discard it")
}

// warnOverridden logs the reasons a forced removal is about to discard.
func warnOverridden(branch string, decision safety.Decision) {
	for _, reason := range decision.Reasons {
		logger.Warnf("%s: discarding despite %s", branch, reason)
	}
}
