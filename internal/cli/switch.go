package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"glade/internal/tmux"
)

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "switch <branch>",
		Aliases: []string{"s"},
		Short:   "Attach to a workspace's session, starting it if needed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}
			branch := args[0]

			ws, err := ctx.Find(branch)
			if err != nil {
				return err
			}
			if ws == nil {
				return fmt.Errorf("no workspace for %s, create one with: glade new %s", branch, branch)
			}

			session := ctx.SessionName(branch)
			if err := ensureSession(session, ws.Path, branch); err != nil {
				return err
			}
			return attachOrSwitch(session)
		},
	}
}

// attachOrSwitch joins a session: switch-client when already inside tmux,
// a full attach otherwise.
func attachOrSwitch(session string) error {
	if tmux.InsideTmux() {
		return tmux.SwitchClient(session)
	}
	return tmux.AttachCmd(session).Run()
}
