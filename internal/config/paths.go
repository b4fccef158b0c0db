package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the mosaic configuration directory, honoring
// XDG_CONFIG_HOME when set.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mosaic"), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, "mosaic"), nil
}

// GetConfigFile returns the path of the default configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
