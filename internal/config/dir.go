package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigDir overrides the config directory, mainly for tests and
// sandboxed installs.
const EnvConfigDir = "HEARTH_CONFIG_DIR"

// Dir returns the hearth configuration directory. The override env var wins;
// otherwise the platform user config dir is used, falling back to a dotdir
// under $HOME when the platform dir cannot be resolved.
func Dir() string {
	if override := strings.TrimSpace(os.Getenv(EnvConfigDir)); override != "" {
		return override
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "hearth")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hearth"
	}
	return filepath.Join(home, ".hearth")
}

// ThemeDir returns the directory scanned for user theme files.
func ThemeDir() string {
	return filepath.Join(Dir(), "themes")
}
