// Package config provides configuration management for mosaic with Viper integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for the mosaic demo.
type Config struct {
	Workspace  WorkspaceConfig  `mapstructure:"workspace" yaml:"workspace" json:"workspace"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// WorkspaceConfig holds layout behavior settings.
type WorkspaceConfig struct {
	// InitialPanes is the number of panes the demo opens with.
	InitialPanes int `mapstructure:"initial_panes" yaml:"initial_panes" json:"initial_panes"`
	// ExpandPercentage is the share a pane receives when expanded.
	ExpandPercentage float64 `mapstructure:"expand_percentage" yaml:"expand_percentage" json:"expand_percentage"`
	// ResizeStep is the percentage a resize keypress shifts a divider by.
	ResizeStep float64 `mapstructure:"resize_step" yaml:"resize_step" json:"resize_step"`
	// StartDirection is the direction of the first split: "row" or "column".
	StartDirection string `mapstructure:"start_direction" yaml:"start_direction" json:"start_direction"`
}

// ColorPalette holds the demo's terminal colors.
type ColorPalette struct {
	Background string `mapstructure:"background" yaml:"background" json:"background"`
	Surface    string `mapstructure:"surface" yaml:"surface" json:"surface"`
	Text       string `mapstructure:"text" yaml:"text" json:"text"`
	Muted      string `mapstructure:"muted" yaml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" yaml:"accent" json:"accent"`
	Border     string `mapstructure:"border" yaml:"border" json:"border"`
}

// AppearanceConfig holds UI/rendering preferences.
type AppearanceConfig struct {
	DarkPalette ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" json:"dark_palette"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			InitialPanes:     3,
			ExpandPercentage: 70,
			ResizeStep:       5,
			StartDirection:   "row",
		},
		Appearance: AppearanceConfig{
			DarkPalette: ColorPalette{
				Background: "#0a0a0b",
				Surface:    "#1a1a1b",
				Text:       "#ffffff",
				Muted:      "#909090",
				Accent:     "#4ade80",
				Border:     "#333333",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper - supports yaml, json, toml automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Set up environment variable support
	v.SetEnvPrefix("MOSAIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"workspace.initial_panes":     "WORKSPACE_INITIAL_PANES",
		"workspace.expand_percentage": "WORKSPACE_EXPAND_PERCENTAGE",
		"workspace.resize_step":       "WORKSPACE_RESIZE_STEP",
		"workspace.start_direction":   "WORKSPACE_START_DIRECTION",
		"logging.level":               "LOG_LEVEL",
		"logging.format":              "LOG_FORMAT",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "MOSAIC_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create default one
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(config)
	m.config = config
	return nil
}

// normalize clamps values the engine would otherwise have to reject.
func normalize(config *Config) {
	if config.Workspace.InitialPanes < 1 {
		config.Workspace.InitialPanes = 1
	}
	if config.Workspace.ExpandPercentage <= 0 || config.Workspace.ExpandPercentage > 100 {
		config.Workspace.ExpandPercentage = 70
	}
	if config.Workspace.ResizeStep <= 0 || config.Workspace.ResizeStep > 50 {
		config.Workspace.ResizeStep = 5
	}
	switch strings.ToLower(config.Workspace.StartDirection) {
	case "row", "column":
		config.Workspace.StartDirection = strings.ToLower(config.Workspace.StartDirection)
	default:
		config.Workspace.StartDirection = "row"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload reloads the configuration (internal method).
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return err
	}

	normalize(config)
	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("workspace.initial_panes", defaults.Workspace.InitialPanes)
	m.viper.SetDefault("workspace.expand_percentage", defaults.Workspace.ExpandPercentage)
	m.viper.SetDefault("workspace.resize_step", defaults.Workspace.ResizeStep)
	m.viper.SetDefault("workspace.start_direction", defaults.Workspace.StartDirection)

	m.viper.SetDefault("appearance.dark_palette.background", defaults.Appearance.DarkPalette.Background)
	m.viper.SetDefault("appearance.dark_palette.surface", defaults.Appearance.DarkPalette.Surface)
	m.viper.SetDefault("appearance.dark_palette.text", defaults.Appearance.DarkPalette.Text)
	m.viper.SetDefault("appearance.dark_palette.muted", defaults.Appearance.DarkPalette.Muted)
	m.viper.SetDefault("appearance.dark_palette.accent", defaults.Appearance.DarkPalette.Accent)
	m.viper.SetDefault("appearance.dark_palette.border", defaults.Appearance.DarkPalette.Border)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	configData, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigFileUsed returns the path to the configuration file being used.
func (m *Manager) GetConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
