// Package project holds the workspace bootstrap heuristics: package
// manager detection and untracked config-file copying.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"glade/internal/logger"
)

// Manager describes how to install dependencies for a project.
type Manager struct {
	Name    string
	Install []string
}

// lockfiles maps marker files to their package manager, checked in order.
// Lockfiles win over manifests: a pnpm-lock.yaml next to a package.json
// means pnpm.
var lockfiles = []struct {
	file    string
	manager Manager
}{
	{"bun.lockb", Manager{Name: "bun", Install: []string{"bun", "install"}}},
	{"bun.lock", Manager{Name: "bun", Install: []string{"bun", "install"}}},
	{"pnpm-lock.yaml", Manager{Name: "pnpm", Install: []string{"pnpm", "install"}}},
	{"yarn.lock", Manager{Name: "yarn", Install: []string{"yarn", "install"}}},
	{"package-lock.json", Manager{Name: "npm", Install: []string{"npm", "install"}}},
	{"uv.lock", Manager{Name: "uv", Install: []string{"uv", "sync"}}},
	{"poetry.lock", Manager{Name: "poetry", Install: []string{"poetry", "install"}}},
	{"Cargo.toml", Manager{Name: "cargo", Install: []string{"cargo", "fetch"}}},
	{"go.mod", Manager{Name: "go", Install: []string{"go", "mod", "download"}}},
	{"requirements.txt", Manager{Name: "pip", Install: []string{"pip", "install", "-r", "requirements.txt"}}},
}

// Detect sniffs dir for a known project type and returns its package
// manager, or nil when the project type is unrecognized.
func Detect(dir string) *Manager {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			m := lf.manager
			return &m
		}
	}

	// Bare package.json: honor an explicit packageManager field, default
	// to npm.
	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil
	}
	if name := packageManagerField(raw); name != "" {
		return &Manager{Name: name, Install: []string{name, "install"}}
	}
	return &Manager{Name: "npm", Install: []string{"npm", "install"}}
}

// packageManagerField extracts the manager name from package.json's
// packageManager field ("pnpm@9.1.0" yields "pnpm").
func packageManagerField(raw []byte) string {
	var manifest struct {
		PackageManager string `json:"packageManager"`
	}
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return ""
	}
	name, _, _ := strings.Cut(manifest.PackageManager, "@")
	switch name {
	case "npm", "pnpm", "yarn", "bun":
		return name
	}
	return ""
}

// RunInstall executes the manager's install command inside dir. Output is
// streamed to the terminal so long installs are visible.
func (m *Manager) RunInstall(dir string) error {
	if _, err := exec.LookPath(m.Install[0]); err != nil {
		return fmt.Errorf("%s not found on PATH", m.Install[0])
	}
	logger.Debugf("installing dependencies with %s in %s", m.Name, dir)

	cmd := exec.Command(m.Install[0], m.Install[1:]...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(m.Install, " "), err)
	}
	return nil
}
