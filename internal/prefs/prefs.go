// Package prefs persists invoiceview user preferences.
//
// Preferences live in ~/.config/invoiceview/prefs.toml, separate from the
// backend configuration so look-and-feel choices survive config changes.
// A broken preferences file is never a reason to refuse startup, which is
// why Load cannot fail: every failure mode degrades to defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for invoiceview.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/invoiceview/prefs.toml"
	defaultTheme     = "slate"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string { return defaultPrefsPath }

// Load reads preferences from path, or from the default location when path
// is empty. Unresolvable paths, missing files, and malformed TOML all fall
// back to defaults.
func Load(path string) Prefs {
	defaults := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return defaults
	}

	p := defaults
	if err := toml.Unmarshal(raw, &p); err != nil {
		return defaults
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to path, creating parent directories as needed.
// Unlike Load, Save reports failures, so callers can decide whether a
// toggle that will not survive a restart matters.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, raw, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// resolvePath expands the default or user-supplied location to an absolute
// path, resolving a leading ~ against the home directory.
func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
