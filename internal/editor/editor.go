// Package editor picks which editor to open in a new workspace.
package editor

import (
	"os"
	"os/exec"
	"strings"
)

// fallbacks are tried, in order, when neither config nor environment names
// an editor.
var fallbacks = []string{"cursor", "code", "vim"}

// Choose returns the editor command, preferring the configured value, then
// $VISUAL, then $EDITOR, then the first known editor on PATH. Empty string
// means no editor is available.
func Choose(configured string) string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if candidate != "" {
			return candidate
		}
	}
	for _, candidate := range fallbacks {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Terminal reports whether the editor runs in the terminal (and so belongs
// inside the tmux editor window) rather than as a GUI process.
func Terminal(command string) bool {
	base := command
	if fields := strings.Fields(command); len(fields) > 0 {
		base = fields[0]
	}
	switch base {
	case "vim", "nvim", "vi", "emacs", "nano", "helix", "hx", "kak", "micro":
		return true
	}
	return false
}

// LaunchDetached starts a GUI editor on dir without waiting for it.
func LaunchDetached(command, dir string) error {
	fields := strings.Fields(command)
	args := append(fields[1:], dir)
	cmd := exec.Command(fields[0], args...)
	return cmd.Start()
}
