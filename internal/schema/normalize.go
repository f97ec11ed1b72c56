package schema

import (
	"strconv"
	"strings"
)

// Normalize coerces a raw edit into a value valid under the descriptor.
// Numeric kinds parse then clamp into [Min, Max]; an unparseable number
// falls back to the declared floor. Text kinds pass through. Enum values
// outside the allowed set fall back to the default. Normalize has no side
// effects and is idempotent.
func Normalize(d Descriptor, raw any) any {
	switch d.Kind {
	case KindPixelInt, KindPercent, KindWeight:
		n, ok := parseNumber(raw)
		if !ok {
			return d.Min
		}
		return clamp(n, d.Min, d.Max)
	case KindColorHex, KindShortText, KindLongText:
		if s, ok := raw.(string); ok {
			return s
		}
		return d.Default
	case KindEnum:
		s, ok := raw.(string)
		if !ok {
			return d.Default
		}
		for _, allowed := range d.Allowed {
			if s == allowed {
				return s
			}
		}
		return d.Default
	case KindBool:
		switch v := raw.(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
		return d.Default
	}
	return d.Default
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// parseNumber accepts the value shapes an edit can arrive in: native ints,
// JSON float64, or a free-typed string. Fractional input truncates toward zero.
func parseNumber(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	}
	return 0, false
}
