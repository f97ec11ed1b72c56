// Package config provides configuration management for the combo builder
// with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" toml:"server" json:"server"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Shopify  ShopifyConfig  `mapstructure:"shopify" toml:"shopify" json:"shopify"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	// StateDir holds transient state: the in-progress design config slot and
	// the receiver log.
	StateDir string `mapstructure:"state_dir" toml:"state_dir" json:"state_dir"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr" toml:"addr" json:"addr"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// ShopifyConfig holds the admin API connection settings.
type ShopifyConfig struct {
	ShopDomain     string        `mapstructure:"shop_domain" toml:"shop_domain" json:"shop_domain"`
	AccessToken    string        `mapstructure:"access_token" toml:"access_token" json:"access_token"`
	APIVersion     string        `mapstructure:"api_version" toml:"api_version" json:"api_version"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" toml:"request_timeout" json:"request_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
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

	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("COMBOBUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"server.addr":             "SERVER_ADDR",
		"database.path":           "DATABASE_PATH",
		"shopify.shop_domain":     "SHOP_DOMAIN",
		"shopify.access_token":    "ACCESS_TOKEN",
		"shopify.api_version":     "API_VERSION",
		"shopify.request_timeout": "REQUEST_TIMEOUT",
		"logging.level":           "LOG_LEVEL",
		"logging.format":          "LOG_FORMAT",
		"state_dir":               "STATE_DIR",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "COMBOBUILDER_"+env); err != nil {
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

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshalAndNormalize()
	if err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
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

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalAndNormalize()
	if err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// unmarshalAndNormalize produces a Config from the current viper state, with
// empty paths filled from the XDG layout and enum fields snapped to known
// values.
func (m *Manager) unmarshalAndNormalize() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	if config.StateDir == "" {
		stateDir, err := GetStateDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get state directory: %w", err)
		}
		config.StateDir = stateDir
	}

	normalizeConfig(config)
	return config, nil
}

// normalizeConfig snaps enum-like fields to a known value instead of
// failing on typos.
func normalizeConfig(config *Config) {
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
		config.Logging.Level = strings.ToLower(config.Logging.Level)
	default:
		config.Logging.Level = "info"
	}

	switch strings.ToLower(config.Logging.Format) {
	case "console", "json":
		config.Logging.Format = strings.ToLower(config.Logging.Format)
	default:
		config.Logging.Format = "console"
	}

	if config.Shopify.RequestTimeout <= 0 {
		config.Shopify.RequestTimeout = 15 * time.Second
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("server.addr", defaults.Server.Addr)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("shopify.shop_domain", defaults.Shopify.ShopDomain)
	m.viper.SetDefault("shopify.access_token", defaults.Shopify.AccessToken)
	m.viper.SetDefault("shopify.api_version", defaults.Shopify.APIVersion)
	m.viper.SetDefault("shopify.request_timeout", defaults.Shopify.RequestTimeout)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("state_dir", defaults.StateDir)
}

// createDefaultConfig writes a default configuration file and its schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := WriteConfigFile(configFile, DefaultConfig()); err != nil {
		return err
	}

	if err := GenerateSchemaFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to generate config schema: %v\n", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)
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
