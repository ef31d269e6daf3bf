package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"glade/internal/editor"
	"glade/internal/logger"
	"glade/internal/project"
	"glade/internal/tmux"
	"glade/internal/workspace"
)

func newNewCmd() *cobra.Command {
	var (
		from      string
		noInstall bool
		noEditor  bool
	)

	cmd := &cobra.Command{
		Use:   "new <branch>",
		Short: "Create a workspace for a branch and attach to it",
		Long: `Creates a worktree for the branch (creating the branch off the base if it
does not exist), copies untracked config files from the main checkout,
installs dependencies, starts the tmux session, and attaches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}
			opts := newOptions{from: from, install: !noInstall, editor: !noEditor}
			if err := runNew(ctx, os.Stdout, args[0], opts); err != nil {
				return err
			}
			return attachOrSwitch(ctx.SessionName(args[0]))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "base branch for a newly created branch (default: remote default branch)")
	cmd.Flags().BoolVar(&noInstall, "no-install", false, "skip dependency installation")
	cmd.Flags().BoolVar(&noEditor, "no-editor", false, "skip launching an editor")
	return cmd
}

type newOptions struct {
	from    string
	install bool
	editor  bool
}

func runNew(ctx *workspace.Context, w io.Writer, branch string, opts newOptions) error {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	// A branch can only be checked out in one worktree at a time.
	if current, err := ctx.Git.CurrentBranch(ctx.RepoRoot); err == nil && current == branch {
		return fmt.Errorf("%s is checked out in the main worktree", branch)
	}

	existing, err := ctx.Find(branch)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Fprintf(w, "workspace for %s already exists\n", branch)
		return ensureSession(ctx.SessionName(branch), existing.Path, branch)
	}

	path := ctx.PathFor(branch)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	newBranch := !ctx.Git.BranchExists(ctx.RepoRoot, branch)
	base := opts.from
	if base == "" {
		base = ctx.BaseBranch()
	}
	if err := ctx.Git.AddWorktree(ctx.RepoRoot, path, branch, base, newBranch); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s created worktree at %s\n", okStyle.Render("✓"), path)

	copied, err := project.CopyGlobs(ctx.RepoRoot, path, ctx.Config.CopyFiles)
	if err != nil {
		logger.Warnf("copy config files: %v", err)
	}
	for _, name := range copied {
		fmt.Fprintf(w, "%s copied %s\n", okStyle.Render("✓"), name)
	}

	if opts.install && ctx.Config.InstallEnabled() {
		if manager := project.Detect(path); manager != nil {
			fmt.Fprintf(w, "%s installing dependencies with %s\n", okStyle.Render("✓"), manager.Name)
			if err := manager.RunInstall(path); err != nil {
				logger.Warnf("install: %v", err)
			}
		}
	}

	session := ctx.SessionName(branch)
	if err := ensureSession(session, path, branch); err != nil {
		return err
	}

	if opts.editor {
		openEditor(ctx, session, path)
	}
	return nil
}

// openEditor launches the preferred editor for the workspace: terminal
// editors run inside the session's editor window, GUI editors detach.
func openEditor(ctx *workspace.Context, session, path string) {
	command := editor.Choose(ctx.Config.Editor)
	if command == "" {
		return
	}
	if editor.Terminal(command) {
		if err := tmux.SendKeys(session, "editor", command); err != nil {
			logger.Warnf("open editor: %v", err)
		}
		return
	}
	if err := editor.LaunchDetached(command, path); err != nil {
		logger.Warnf("open editor: %v", err)
	}
}
