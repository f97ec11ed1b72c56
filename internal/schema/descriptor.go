// Package schema declares every configurable combo-builder parameter:
// its key, semantic kind, bounds, and default value. The table is closed;
// the preview renderer only ever reads keys declared here.
package schema

import "sync"

// Kind is the semantic type of a parameter value.
type Kind string

const (
	KindPixelInt  Kind = "pixel-int"  // integer pixel value, clamped to [Min, Max]
	KindPercent   Kind = "percent"    // integer percentage, clamped to [Min, Max]
	KindWeight    Kind = "weight"     // CSS font weight, clamped to [Min, Max]
	KindColorHex  Kind = "color-hex"  // free-form color string
	KindShortText Kind = "short-text" // single-line text, no bounds
	KindLongText  Kind = "long-text"  // multi-line text, no bounds
	KindEnum      Kind = "enum"       // one of Allowed, falls back to Default
	KindBool      Kind = "bool"       // strict boolean
)

// Section names for grouping parameters.
const (
	SectionContainer = "Container"
	SectionBanner    = "Banner"
	SectionBar       = "Selection Bar"
	SectionContent   = "Content"
	SectionGrid      = "Product Grid"
	SectionButtons   = "Buttons"
	SectionDiscount  = "Discount"
)

// Descriptor describes a single configurable parameter. Keys are stable
// across persisted templates; renaming one breaks template reload.
type Descriptor struct {
	Key     string   `json:"key"`
	Kind    Kind     `json:"kind"`
	Min     int      `json:"min,omitempty"`
	Max     int      `json:"max,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
	Default any      `json:"default"`
	Section string   `json:"section"`
}

// Numeric reports whether the descriptor's kind parses and clamps numbers.
func (d Descriptor) Numeric() bool {
	switch d.Kind {
	case KindPixelInt, KindPercent, KindWeight:
		return true
	}
	return false
}

var (
	lookupOnce sync.Once
	lookupMap  map[string]Descriptor
)

// Lookup returns the descriptor for a key, if one is declared.
func Lookup(key string) (Descriptor, bool) {
	lookupOnce.Do(func() {
		all := All()
		lookupMap = make(map[string]Descriptor, len(all))
		for _, d := range all {
			lookupMap[d.Key] = d
		}
	})
	d, ok := lookupMap[key]
	return d, ok
}

// Defaults returns a fresh key→default mapping for every declared parameter.
func Defaults() map[string]any {
	all := All()
	out := make(map[string]any, len(all)+1)
	for _, d := range all {
		out[d.Key] = d.Default
	}
	// The selected discount is a nullable reference, not a styled parameter;
	// it rides along in the configuration and is managed by the offer state.
	out[KeySelectedDiscountID] = nil
	return out
}
