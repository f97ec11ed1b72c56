// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values after
// normalization. Problems are accumulated so a broken file reports
// everything wrong with it at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	if strings.TrimSpace(config.Server.Addr) == "" {
		validationErrors = append(validationErrors, "server.addr cannot be empty")
	}

	if strings.TrimSpace(config.Database.Path) == "" {
		validationErrors = append(validationErrors, "database.path cannot be empty")
	}

	if strings.TrimSpace(config.StateDir) == "" {
		validationErrors = append(validationErrors, "state_dir cannot be empty")
	}

	// The shop domain is optional (discount creation is then unavailable),
	// but when present it must be a plausible hostname.
	if domain := strings.TrimSpace(config.Shopify.ShopDomain); domain != "" {
		if strings.Contains(domain, "://") {
			validationErrors = append(validationErrors, "shopify.shop_domain must be a bare hostname, not a URL")
		} else if !strings.Contains(domain, ".") {
			validationErrors = append(validationErrors, fmt.Sprintf("shopify.shop_domain does not look like a hostname (got: %s)", domain))
		}
		if strings.TrimSpace(config.Shopify.AccessToken) == "" {
			validationErrors = append(validationErrors, "shopify.access_token is required when shopify.shop_domain is set")
		}
	}

	if config.Shopify.RequestTimeout <= 0 {
		validationErrors = append(validationErrors, "shopify.request_timeout must be positive")
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
