package app

import (
	"os"
	"path/filepath"

	"quatex/internal/config"
)

const (
	// HomeEnv overrides the default data directory.
	HomeEnv = "QUATEX_HOME"

	// ConfigFilename is looked up in the data directory when no config path
	// is given.
	ConfigFilename = "quatex.toml"
)

// DefaultHome returns $QUATEX_HOME, or ~/.quatex when unset.
func DefaultHome() string {
	if h := os.Getenv(HomeEnv); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".quatex")
	}
	return ".quatex"
}

// LoadSettings reads path, or <home>/quatex.toml when path is empty. A
// missing file yields the defaults.
func LoadSettings(home, path string) (*config.Config, error) {
	if path == "" {
		path = filepath.Join(home, ConfigFilename)
	}
	return config.LoadFile(path)
}
