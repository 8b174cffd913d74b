// Package paths resolves configuration and data file locations for the
// arcana CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// StoreFileName is the single JSON file holding all client data.
const StoreFileName = "clients.json"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ARCANA_CONFIG_DIR"
	EnvDataDir   = "ARCANA_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/arcana (fallback ~/.config/arcana)
// macOS:   ~/Library/Application Support/arcana
// Windows: %APPDATA%/arcana
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "arcana"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "arcana"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "arcana"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/arcana (fallback ~/.local/share/arcana)
// macOS:   ~/Library/Application Support/arcana
// Windows: %APPDATA%/arcana
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "arcana"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "arcana"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "arcana"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ARCANA_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml data_dir > ARCANA_DATA_DIR env >
// DefaultDataDir().
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// StorePath returns the full path of the client store file inside the
// resolved data directory.
func StorePath(flag, configYAMLValue string) (string, error) {
	dir, err := ResolveDataDir(flag, configYAMLValue)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StoreFileName), nil
}
