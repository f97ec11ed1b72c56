// Package preview derives the combo widget's visual layout from a
// configuration and a device mode. Everything here is pure: same inputs,
// same tree, no I/O.
package preview

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/merchkit/combobuilder/internal/combo"
)

// Device selects which half of a device-paired parameter applies.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

// ErrInvalidDevice reports a device mode outside {desktop, mobile}. This is
// a caller defect, not user input, so it fails loudly instead of defaulting.
var ErrInvalidDevice = errors.New("invalid device mode")

// ParseDevice validates a raw device string.
func ParseDevice(raw string) (Device, error) {
	switch Device(raw) {
	case DeviceDesktop, DeviceMobile:
		return Device(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDevice, raw)
}

// pair names the two configuration keys backing one logical parameter.
// The table is the single source of truth for device resolution; keys are
// never derived by suffix concatenation.
type pair struct {
	desktop string
	mobile  string
}

func (p pair) key(device Device) string {
	if device == DeviceMobile {
		return p.mobile
	}
	return p.desktop
}

var (
	pairPaddingTop    = pair{"container_padding_top_desktop", "container_padding_top_mobile"}
	pairPaddingRight  = pair{"container_padding_right_desktop", "container_padding_right_mobile"}
	pairPaddingBottom = pair{"container_padding_bottom_desktop", "container_padding_bottom_mobile"}
	pairPaddingLeft   = pair{"container_padding_left_desktop", "container_padding_left_mobile"}
	pairBannerWidth   = pair{"banner_width_desktop", "banner_width_mobile"}
	pairBannerHeight  = pair{"banner_height_desktop", "banner_height_mobile"}
	pairBarAlignment  = pair{"preview_alignment", "preview_alignment_mobile"}
	pairColumns       = pair{"desktop_columns", "mobile_columns"}
	pairCardHeight    = pair{"card_height_desktop", "card_height_mobile"}
	pairImageHeight   = pair{"product_image_height_desktop", "product_image_height_mobile"}
	pairTitleSize     = pair{"product_title_size_desktop", "product_title_size_mobile"}
	pairPriceSize     = pair{"product_price_size_desktop", "product_price_size_mobile"}
)

// Effective holds the single effective value of every device-paired
// parameter for one device mode. Shared parameters are read straight from
// the configuration and do not appear here.
type Effective struct {
	PaddingTop    int
	PaddingRight  int
	PaddingBottom int
	PaddingLeft   int

	BannerWidthPct int
	BannerHeightPx int

	BarAlignment string

	Columns            int
	CardHeight         int
	ProductImageHeight int
	ProductTitleSize   int
	ProductPriceSize   int
}

// Resolve collapses every device-paired parameter down to its effective
// value for the given mode. It is total over the closed pair table; the only
// failure is an unrecognized device.
func Resolve(cfg combo.Config, device Device) (Effective, error) {
	if device != DeviceDesktop && device != DeviceMobile {
		return Effective{}, fmt.Errorf("%w: %q", ErrInvalidDevice, device)
	}

	return Effective{
		PaddingTop:    cfg.Int(pairPaddingTop.key(device)),
		PaddingRight:  cfg.Int(pairPaddingRight.key(device)),
		PaddingBottom: cfg.Int(pairPaddingBottom.key(device)),
		PaddingLeft:   cfg.Int(pairPaddingLeft.key(device)),

		BannerWidthPct: cfg.Int(pairBannerWidth.key(device)),
		BannerHeightPx: cfg.Int(pairBannerHeight.key(device)),

		BarAlignment: cfg.Str(pairBarAlignment.key(device)),

		Columns:            columnCount(cfg.Str(pairColumns.key(device))),
		CardHeight:         cfg.Int(pairCardHeight.key(device)),
		ProductImageHeight: cfg.Int(pairImageHeight.key(device)),
		ProductTitleSize:   cfg.Int(pairTitleSize.key(device)),
		ProductPriceSize:   cfg.Int(pairPriceSize.key(device)),
	}, nil
}

// columnCount parses the column enum, flooring at one column.
func columnCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
