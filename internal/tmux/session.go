package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Sessions live on a dedicated socket so glade never collides with a
// user's own tmux server.
const socketName = "glade"

func run(args ...string) error {
	cmd := exec.Command("tmux", append([]string{"-L", socketName}, args...)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tmux %s: %s", args[0], strings.TrimSpace(string(out)))
	}
	return nil
}

// Installed reports whether the tmux binary is on PATH.
func Installed() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// InsideTmux reports whether the calling process already runs inside a
// tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// SessionExists reports whether a named session exists on the glade socket.
func SessionExists(name string) bool {
	return exec.Command("tmux", "-L", socketName, "has-session", "-t", "="+name).Run() == nil
}

// configPath returns the glade tmux config path, writing defaults if absent.
// The config adds a no-prefix detach key so users can leave a workspace
// without knowing tmux shortcuts.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	p := filepath.Join(dir, "glade", "tmux.conf")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	const conf = "# glade tmux config, regenerated on demand\n" +
		"# Ctrl+] detaches without stopping anything in the workspace\n" +
		"bind-key -n C-] detach-client\n" +
		"set -g mouse on\n" +
		"bind-key -n PageUp copy-mode\n"
	if err := os.WriteFile(p, []byte(conf), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return p, nil
}

// EnsureSession creates a detached session rooted at path if one does not
// already exist, with the standard two-window layout (editor, shell) and a
// styled status bar. Idempotent: safe to call before every attach.
func EnsureSession(name, path, branch string) error {
	if SessionExists(name) {
		return nil
	}
	cfgPath, err := configPath()
	if err != nil {
		return err
	}
	cmd := exec.Command("tmux", "-L", socketName, "-f", cfgPath,
		"new-session", "-d", "-s", name, "-c", path, "-n", "editor")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("new-session: %s", strings.TrimSpace(string(out)))
	}
	if err := NewWindow(name, "shell", path); err != nil {
		return err
	}
	if err := run("select-window", "-t", name+":editor"); err != nil {
		return err
	}
	styleStatusBar(name, branch)
	return nil
}

// NewWindow adds a named window to a session, rooted at path.
func NewWindow(session, name, path string) error {
	return run("new-window", "-d", "-t", session, "-n", name, "-c", path)
}

// SendKeys types a command into a session window and presses Enter.
func SendKeys(session, window, keys string) error {
	return run("send-keys", "-t", session+":"+window, keys, "Enter")
}

// styleStatusBar colors the session's status line and pins the branch name
// on the left. Cosmetic; errors are ignored.
func styleStatusBar(session, branch string) {
	opts := [][]string{
		{"status-style", "bg=colour235,fg=colour250"},
		{"status-left", fmt.Sprintf(" %s ", branch)},
		{"status-left-style", "bg=colour205,fg=colour232,bold"},
		{"status-left-length", "40"},
	}
	for _, opt := range opts {
		_ = run(append([]string{"set-option", "-t", session}, opt...)...)
	}
}

// AttachCmd returns a command that attaches the terminal to a session.
// The caller hands it the controlling terminal and waits.
func AttachCmd(name string) *exec.Cmd {
	cmd := exec.Command("tmux", "-L", socketName, "attach-session", "-t", "="+name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// SwitchClient moves the current tmux client to another session. Only
// valid when already inside tmux.
func SwitchClient(name string) error {
	return run("switch-client", "-t", "="+name)
}

// KillSession terminates a session. Killing a session that does not exist
// is not an error.
func KillSession(name string) error {
	if !SessionExists(name) {
		return nil
	}
	return run("kill-session", "-t", "="+name)
}

// ListSessions returns the names of all sessions on the glade socket.
func ListSessions() []string {
	out, err := exec.Command("tmux", "-L", socketName,
		"list-sessions", "-F", "#{session_name}").Output()
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}
