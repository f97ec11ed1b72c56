package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDGHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("ENV", "")
	return home
}

func TestDefaultConfigIsValid(t *testing.T) {
	setXDGHome(t)

	cfg := DefaultConfig()
	normalizeConfig(cfg)
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, ":8350", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestNormalizeConfigFallbacks(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "LOUD", Format: "xml"},
	}
	normalizeConfig(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 15*time.Second, cfg.Shopify.RequestTimeout)

	cfg = &Config{Logging: LoggingConfig{Level: "DEBUG", Format: "JSON"}}
	normalizeConfig(cfg)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidateConfigAccumulatesErrors(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Addr: ""},
		Database: DatabaseConfig{Path: ""},
		Shopify: ShopifyConfig{
			ShopDomain:     "http://not-a-hostname",
			RequestTimeout: 15 * time.Second,
		},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		StateDir: "",
	}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.addr")
	assert.Contains(t, err.Error(), "database.path")
	assert.Contains(t, err.Error(), "state_dir")
	assert.Contains(t, err.Error(), "shopify.shop_domain")
	assert.Contains(t, err.Error(), "shopify.access_token")
}

func TestValidateConfigShopDomainNeedsToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/x.sqlite"
	cfg.StateDir = "/tmp/state"
	cfg.Shopify.ShopDomain = "my-store.myshopify.com"
	normalizeConfig(cfg)

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")

	cfg.Shopify.AccessToken = "shpat_x"
	require.NoError(t, validateConfig(cfg))
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	setXDGHome(t)

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":9000"
	cfg.Shopify.ShopDomain = "demo.myshopify.com"

	require.NoError(t, WriteConfigFile(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "COMBOBUILDER_", "header explains env overrides")
	assert.Contains(t, content, `addr = ':9000'`)
	assert.Contains(t, content, `shop_domain = 'demo.myshopify.com'`)
}

func TestManagerLoadCreatesDefaultFile(t *testing.T) {
	setXDGHome(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	got := mgr.Get()
	assert.Equal(t, ":8350", got.Server.Addr)
	assert.NotEmpty(t, got.Database.Path)
	assert.NotEmpty(t, got.StateDir)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	_, err = os.Stat(configFile)
	assert.NoError(t, err, "default config file is written on first load")
}

func TestManagerEnvOverride(t *testing.T) {
	setXDGHome(t)
	t.Setenv("COMBOBUILDER_SERVER_ADDR", ":7777")
	t.Setenv("COMBOBUILDER_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	got := mgr.Get()
	assert.Equal(t, ":7777", got.Server.Addr)
	assert.Equal(t, "debug", got.Logging.Level)
}
