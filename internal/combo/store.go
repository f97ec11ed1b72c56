package combo

import (
	"fmt"
	"sync"

	"github.com/merchkit/combobuilder/internal/schema"
)

// Store owns one mutable configuration instance. Every mutation, including
// paired updates, is applied as a single replace-the-whole-map swap, so a
// concurrent reader never observes a half-applied edit.
type Store struct {
	mu       sync.RWMutex
	cfg      Config
	onCommit []func(Config)
}

// NewStore creates a store seeded from schema defaults.
func NewStore() *Store {
	return &Store{cfg: NewDefault()}
}

// NewStoreWith creates a store seeded from an existing configuration,
// typically a rehydrated session cache slot.
func NewStoreWith(cfg Config) *Store {
	if cfg == nil {
		cfg = NewDefault()
	}
	return &Store{cfg: cfg.Clone()}
}

// Load replaces the current configuration with a persisted document merged
// over defaults.
func (s *Store) Load(data []byte) error {
	cfg, err := FromJSON(data)
	if err != nil {
		return err
	}
	s.commit(cfg)
	return nil
}

// Snapshot returns a consistent copy of the current configuration.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Set normalizes a raw edit against the key's descriptor and commits it.
func (s *Store) Set(key string, raw any) error {
	d, ok := schema.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	s.mu.Lock()
	next := s.cfg.Clone()
	next[key] = schema.Normalize(d, raw)
	s.cfg = next
	s.mu.Unlock()

	s.notify(next)
	return nil
}

// SetPair writes one raw edit to two related keys in a single commit. Each
// key is normalized against its own descriptor even though the input is
// shared; both land in the same swap, never one without the other.
func (s *Store) SetPair(keyA, keyB string, raw any) error {
	da, ok := schema.Lookup(keyA)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, keyA)
	}
	db, ok := schema.Lookup(keyB)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, keyB)
	}

	s.mu.Lock()
	next := s.cfg.Clone()
	next[keyA] = schema.Normalize(da, raw)
	next[keyB] = schema.Normalize(db, raw)
	s.cfg = next
	s.mu.Unlock()

	s.notify(next)
	return nil
}

// Reset restores schema defaults.
func (s *Store) Reset() {
	s.commit(NewDefault())
}

// OnCommit registers a hook invoked with a snapshot after every committed
// change. Used to mirror the in-progress configuration to the session cache.
func (s *Store) OnCommit(fn func(Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCommit = append(s.onCommit, fn)
}

func (s *Store) commit(next Config) {
	s.mu.Lock()
	s.cfg = next
	s.mu.Unlock()
	s.notify(next)
}

func (s *Store) notify(next Config) {
	s.mu.RLock()
	hooks := make([]func(Config), len(s.onCommit))
	copy(hooks, s.onCommit)
	s.mu.RUnlock()

	for _, fn := range hooks {
		fn(next.Clone())
	}
}
