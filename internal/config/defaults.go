// Package config provides default configuration values for the combo builder.
package config

import (
	"time"
)

// Default configuration constants
const (
	defaultServerAddr     = ":8350"
	defaultAPIVersion     = "2024-10"
	defaultRequestTimeout = 15 * time.Second
)

// getDefaultDatabasePath returns the XDG database path, falls back to empty
// string on error (filled again at load time).
func getDefaultDatabasePath() string {
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return ""
	}
	return dbPath
}

func getDefaultStateDir() string {
	stateDir, err := GetStateDir()
	if err != nil {
		return ""
	}
	return stateDir
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: defaultServerAddr,
		},
		Database: DatabaseConfig{
			Path: getDefaultDatabasePath(),
		},
		Shopify: ShopifyConfig{
			ShopDomain:     "",
			AccessToken:    "",
			APIVersion:     defaultAPIVersion,
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		StateDir: getDefaultStateDir(),
	}
}
