package combo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	cacheFileName = "combo_design_config.json"
	cacheFilePerm = 0o600
	cacheDirPerm  = 0o750
)

// SessionCache mirrors the in-progress configuration to a local slot so an
// interrupted editing session can be picked up where it left off. It is a
// convenience cache, not a source of truth; loading always merges over
// schema defaults.
type SessionCache struct {
	path string
}

// NewSessionCache stores the slot under stateDir.
func NewSessionCache(stateDir string) *SessionCache {
	return &SessionCache{path: filepath.Join(stateDir, cacheFileName)}
}

// Path returns the backing file location.
func (c *SessionCache) Path() string {
	return c.path
}

// Load rehydrates the cached configuration merged over defaults. A missing
// or unreadable slot yields pure defaults rather than an error; the cache is
// disposable.
func (c *SessionCache) Load() Config {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return NewDefault()
	}
	cfg, err := FromJSON(data)
	if err != nil {
		return NewDefault()
	}
	return cfg
}

// Save writes the configuration to the slot, creating the state directory
// on first use.
func (c *SessionCache) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(c.path), cacheDirPerm); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if err := os.WriteFile(c.path, data, cacheFilePerm); err != nil {
		return fmt.Errorf("write session cache: %w", err)
	}
	return nil
}

// Clear removes the slot. Absence is not an error.
func (c *SessionCache) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
