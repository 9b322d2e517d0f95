// Package xdg provides helpers to resolve XDG Base Directory paths for charity.
// Configuration lives under the config directory; the session key-value file
// lives under the state directory so that it survives between invocations the
// way a browser's local storage survives between page loads.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used below every XDG base directory.
const AppName = "charity"

// ConfigDir returns the XDG config directory for charity.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/charity when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for charity.
// It falls back to ~/.local/state/charity when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return resolve("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func resolve(envKey, homeRel string) (string, error) {
	base := os.Getenv(envKey)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
