// Package session handles the blou durable key-value slots: the saved
// session user and the theme preference, stored under ~/.config/blou/.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/blouapp/blou/store"
)

// Prefs holds the persisted UI preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	defaultUserPath  = "~/.config/blou/session.toml"
	defaultPrefsPath = "~/.config/blou/prefs.toml"
	defaultTheme     = ThemeLight
)

// Slots addresses the two durable files. Empty paths fall back to the
// defaults under ~/.config/blou/.
type Slots struct {
	UserPath  string
	PrefsPath string
}

// LoadUser reads the saved session user. Loading is best-effort: a
// missing, unreadable, or malformed slot yields nil, which callers treat
// as logged out. A malformed file is left in place for inspection.
func (s Slots) LoadUser() *store.User {
	resolved, err := resolvePath(s.UserPath, defaultUserPath)
	if err != nil {
		return nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil
	}

	var u store.User
	if err := toml.Unmarshal(bytes, &u); err != nil {
		return nil
	}
	if strings.TrimSpace(u.ID) == "" {
		return nil
	}
	return &u
}

// SaveUser writes the session user slot, creating directories as needed.
func (s Slots) SaveUser(u store.User) error {
	resolved, err := resolvePath(s.UserPath, defaultUserPath)
	if err != nil {
		return fmt.Errorf("resolve session path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write session user: %w", err)
	}
	return nil
}

// ClearUser removes the session user slot. A missing slot is not an
// error.
func (s Slots) ClearUser() error {
	resolved, err := resolvePath(s.UserPath, defaultUserPath)
	if err != nil {
		return fmt.Errorf("resolve session path: %w", err)
	}

	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session user: %w", err)
	}
	return nil
}

// LoadPrefs reads the theme preference, falling back to the light theme
// when the slot is missing or malformed.
func (s Slots) LoadPrefs() Prefs {
	prefs := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(s.PrefsPath, defaultPrefsPath)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme}
	}

	if prefs.Theme != ThemeDark && prefs.Theme != ThemeLight {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// SavePrefs writes the theme preference, creating directories as needed.
func (s Slots) SavePrefs(p Prefs) error {
	resolved, err := resolvePath(s.PrefsPath, defaultPrefsPath)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(fallback)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
