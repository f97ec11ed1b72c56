// Package combo holds the mutable combo-builder configuration: a mapping
// from parameter key to value, validated against the schema on every write.
package combo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/merchkit/combobuilder/internal/schema"
)

// ErrUnknownKey is returned when an edit targets a key with no descriptor.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config maps parameter keys to values. Every value held here conforms to
// its descriptor's bounds; that is enforced at write time, never at read time.
type Config map[string]any

// NewDefault returns a configuration seeded from schema defaults.
func NewDefault() Config {
	return Config(schema.Defaults())
}

// Clone returns a shallow copy. Values are scalars, so a shallow copy is
// a full copy.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Merge lays persisted values over defaults. Keys without a descriptor are
// dropped; keys added to the schema since the document was saved keep their
// defaults. Known values are re-normalized so an old or hand-edited document
// can never smuggle an out-of-bounds value into the store.
func Merge(persisted map[string]any) Config {
	cfg := NewDefault()
	for key, raw := range persisted {
		if key == schema.KeySelectedDiscountID {
			cfg[key] = normalizeDiscountID(raw)
			continue
		}
		d, ok := schema.Lookup(key)
		if !ok {
			continue
		}
		cfg[key] = schema.Normalize(d, raw)
	}
	// A selection without an offer is unreachable through the public
	// transitions; repair it on load rather than trusting the document.
	if has, _ := cfg[schema.KeyHasDiscountOffer].(bool); !has {
		cfg[schema.KeySelectedDiscountID] = nil
	}
	return cfg
}

// FromJSON decodes a persisted configuration document and merges it over
// defaults. An empty document yields pure defaults.
func FromJSON(data []byte) (Config, error) {
	if len(data) == 0 {
		return NewDefault(), nil
	}
	var persisted map[string]any
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	return Merge(persisted), nil
}

// Int reads an integer parameter, falling back to the schema default for a
// missing key.
func (c Config) Int(key string) int {
	if n, ok := asInt(c[key]); ok {
		return n
	}
	if d, ok := schema.Lookup(key); ok {
		if n, ok := asInt(d.Default); ok {
			return n
		}
	}
	return 0
}

// Str reads a string parameter, falling back to the schema default.
func (c Config) Str(key string) string {
	if s, ok := c[key].(string); ok {
		return s
	}
	if d, ok := schema.Lookup(key); ok {
		if s, ok := d.Default.(string); ok {
			return s
		}
	}
	return ""
}

// Bool reads a boolean parameter, falling back to the schema default.
func (c Config) Bool(key string) bool {
	if b, ok := c[key].(bool); ok {
		return b
	}
	if d, ok := schema.Lookup(key); ok {
		if b, ok := d.Default.(bool); ok {
			return b
		}
	}
	return false
}

// SelectedDiscountID returns the linked discount id, if one is selected.
func (c Config) SelectedDiscountID() (int64, bool) {
	if id, ok := asInt(c[schema.KeySelectedDiscountID]); ok {
		return int64(id), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func normalizeDiscountID(raw any) any {
	if id, ok := asInt(raw); ok {
		return int64(id)
	}
	return nil
}
