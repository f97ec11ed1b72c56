package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DiscountType classifies how a discount applies.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountBOGO       DiscountType = "bogo"
	DiscountVolume     DiscountType = "volume"
	DiscountAmount     DiscountType = "amount"
)

// DiscountStatus tracks the lifecycle of a catalog entry.
type DiscountStatus string

const (
	DiscountActive    DiscountStatus = "active"
	DiscountInactive  DiscountStatus = "inactive"
	DiscountScheduled DiscountStatus = "scheduled"
	DiscountExpired   DiscountStatus = "expired"
)

// Discount validation errors.
var (
	ErrInvalidDiscountTitle  = errors.New("discount title cannot be empty")
	ErrInvalidDiscountValue  = errors.New("discount value must be positive")
	ErrInvalidDiscountType   = errors.New("unknown discount type")
	ErrInvalidDiscountStatus = errors.New("unknown discount status")
	ErrDiscountNotFound      = errors.New("discount not found")
)

// Discount is a local catalog record mirroring a storefront discount. Value
// carries the magnitude for percentage/fixed/amount types; bogo and volume
// encode their rule in the title.
type Discount struct {
	ID      int64          `json:"id"`
	Title   string         `json:"title"`
	Code    string         `json:"code,omitempty"`
	Type    DiscountType   `json:"type"`
	Value   float64        `json:"value"`
	Status  DiscountStatus `json:"status"`
	Created string         `json:"created"`
	Usage   string         `json:"usage"`
}

// NewDiscount creates a catalog record for a freshly created discount. Usage
// starts at zero against an unlimited budget.
func NewDiscount(title string, dtype DiscountType, value float64) *Discount {
	return &Discount{
		Title:   title,
		Type:    dtype,
		Value:   value,
		Status:  DiscountActive,
		Created: time.Now().Format("Jan 2, 2006"),
		Usage:   FormatUsage(0, 0),
	}
}

// Validate checks the record is storable.
func (d *Discount) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrInvalidDiscountTitle
	}
	switch d.Type {
	case DiscountPercentage, DiscountFixed, DiscountBOGO, DiscountVolume, DiscountAmount:
	default:
		return ErrInvalidDiscountType
	}
	switch d.Status {
	case DiscountActive, DiscountInactive, DiscountScheduled, DiscountExpired:
	default:
		return ErrInvalidDiscountStatus
	}
	if d.Value < 0 {
		return ErrInvalidDiscountValue
	}
	return nil
}

// IsActive reports whether the discount can be offered right now.
func (d *Discount) IsActive() bool {
	return d.Status == DiscountActive
}

// FormatUsage renders the display usage string. A zero limit reads as
// unlimited.
func FormatUsage(used, limit int) string {
	if limit <= 0 {
		return fmt.Sprintf("%d / Unlimited", used)
	}
	return fmt.Sprintf("%d / %d", used, limit)
}

// CodeFromTitle derives a redemption code when none was supplied: the title
// uppercased with whitespace removed.
func CodeFromTitle(title string) string {
	return strings.ToUpper(strings.ReplaceAll(title, " ", ""))
}
