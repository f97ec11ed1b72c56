package preview

import (
	"fmt"

	"github.com/merchkit/combobuilder/internal/combo"
)

// Fixed viewport envelopes per device mode. Design constants, not
// user-configurable.
const (
	ViewportDesktop = 1280
	ViewportMobile  = 430
)

// The grid always shows a fixed number of placeholder cards; product data is
// not part of the configuration.
const placeholderCards = 3

// Rectangle slots stretch and flatten relative to the configured base size.
const (
	rectWidthFactor  = 1.4
	rectHeightFactor = 0.8
)

// Radius is a border radius expressed either in pixels or as a percentage
// of the box. Exactly one of the two is meaningful.
type Radius struct {
	Px  int `json:"px"`
	Pct int `json:"pct,omitempty"`
}

// Edges is a four-side pixel inset.
type Edges struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Button is a fully styled action button.
type Button struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	TextColor  string `json:"text_color"`
	FontSize   int    `json:"font_size"`
	FontWeight int    `json:"font_weight"`
}

// Slot is one placeholder selection item in the pricing bar.
type Slot struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	BorderRadius Radius `json:"border_radius"`
	BorderColor  string `json:"border_color"`
}

// Banner is the optional hero block above the selection bar.
type Banner struct {
	WidthPct      int `json:"width_pct"`
	HeightPx      int `json:"height_px"`
	PaddingTop    int `json:"padding_top"`
	PaddingBottom int `json:"padding_bottom"`
}

// PriceTag is one of the two price labels in the selection bar.
type PriceTag struct {
	FontSize int    `json:"font_size"`
	Color    string `json:"color"`
}

// SelectionBar is the pricing/selection strip with its placeholder slots.
type SelectionBar struct {
	Background     string   `json:"background"`
	TextColor      string   `json:"text_color"`
	BorderRadius   int      `json:"border_radius"`
	Padding        int      `json:"padding"`
	PaddingTop     int      `json:"padding_top"`
	PaddingBottom  int      `json:"padding_bottom"`
	MarginTop      int      `json:"margin_top"`
	MarginBottom   int      `json:"margin_bottom"`
	MinHeight      int      `json:"min_height"`
	FontSize       int      `json:"font_size"`
	FontWeight     int      `json:"font_weight"`
	AlignItems     string   `json:"align_items"`
	JustifyContent string   `json:"justify_content"`
	ItemGap        int      `json:"item_gap"`
	Slots          []Slot   `json:"slots"`
	OriginalPrice  PriceTag `json:"original_price"`
	DiscountPrice  PriceTag `json:"discount_price"`
	BuyButton      Button   `json:"buy_button"`
}

// TextBlock is a styled run of text.
type TextBlock struct {
	Text       string `json:"text"`
	Align      string `json:"align"`
	FontSize   int    `json:"font_size"`
	Color      string `json:"color"`
	FontWeight int    `json:"font_weight"`
}

// HeadingBlock holds the collection title and description.
type HeadingBlock struct {
	PaddingTop    int       `json:"padding_top"`
	PaddingBottom int       `json:"padding_bottom"`
	Title         TextBlock `json:"title"`
	Description   TextBlock `json:"description"`
}

// ProductCard is one placeholder card in the grid.
type ProductCard struct {
	Label       string `json:"label"`
	ImageHeight int    `json:"image_height"`
	TitleSize   int    `json:"title_size"`
	PriceSize   int    `json:"price_size"`
	MinHeight   int    `json:"min_height"`
}

// ProductGrid is the placeholder product grid.
type ProductGrid struct {
	Columns          int           `json:"columns"`
	Gap              int           `json:"gap"`
	PaddingTop       int           `json:"padding_top"`
	PaddingBottom    int           `json:"padding_bottom"`
	MarginTop        int           `json:"margin_top"`
	MarginBottom     int           `json:"margin_bottom"`
	CardPadding      int           `json:"card_padding"`
	CardBorderRadius int           `json:"card_border_radius"`
	Cards            []ProductCard `json:"cards"`
	AddButton        Button        `json:"add_button"`
}

// RenderTree is the fully resolved, device-specific layout. It is recomputed
// on every change and never persisted.
type RenderTree struct {
	Device             Device       `json:"device"`
	Layout             string       `json:"layout"`
	ViewportWidth      int          `json:"viewport_width"`
	Padding            Edges        `json:"padding"`
	Banner             *Banner      `json:"banner,omitempty"`
	SelectionBar       SelectionBar `json:"selection_bar"`
	Heading            HeadingBlock `json:"heading"`
	Grid               ProductGrid  `json:"grid"`
	HasDiscountOffer   bool         `json:"has_discount_offer"`
	SelectedDiscountID *int64       `json:"selected_discount_id,omitempty"`
}

// Render derives the full render tree for one device mode. Deterministic and
// pure; the only failure mode is an unrecognized device. Missing optional
// keys never error, they fall back to their schema defaults.
func Render(cfg combo.Config, device Device) (*RenderTree, error) {
	eff, err := Resolve(cfg, device)
	if err != nil {
		return nil, err
	}

	viewport := ViewportDesktop
	if device == DeviceMobile {
		viewport = ViewportMobile
	}

	tree := &RenderTree{
		Device:        device,
		Layout:        cfg.Str("layout"),
		ViewportWidth: viewport,
		Padding: Edges{
			Top:    eff.PaddingTop,
			Right:  eff.PaddingRight,
			Bottom: eff.PaddingBottom,
			Left:   eff.PaddingLeft,
		},
		SelectionBar:     renderSelectionBar(cfg, eff),
		Heading:          renderHeading(cfg),
		Grid:             renderGrid(cfg, eff),
		HasDiscountOffer: cfg.Bool("has_discount_offer"),
	}

	if cfg.Bool("show_banner") {
		tree.Banner = &Banner{
			WidthPct:      eff.BannerWidthPct,
			HeightPx:      eff.BannerHeightPx,
			PaddingTop:    cfg.Int("banner_padding_top"),
			PaddingBottom: cfg.Int("banner_padding_bottom"),
		}
	}

	if id, ok := cfg.SelectedDiscountID(); ok {
		tree.SelectedDiscountID = &id
	}

	return tree, nil
}

func renderSelectionBar(cfg combo.Config, eff Effective) SelectionBar {
	count := cfg.Int("max_selections")
	slot := slotGeometry(
		cfg.Str("preview_item_shape"),
		cfg.Int("preview_item_size"),
		cfg.Int("preview_border_radius"),
	)
	slot.BorderColor = cfg.Str("preview_item_border_color")

	slots := make([]Slot, count)
	for i := range slots {
		slots[i] = slot
	}

	return SelectionBar{
		Background:     cfg.Str("preview_bg_color"),
		TextColor:      cfg.Str("preview_text_color"),
		BorderRadius:   cfg.Int("preview_border_radius"),
		Padding:        cfg.Int("preview_padding"),
		PaddingTop:     cfg.Int("preview_padding_top"),
		PaddingBottom:  cfg.Int("preview_padding_bottom"),
		MarginTop:      cfg.Int("preview_margin_top"),
		MarginBottom:   cfg.Int("preview_margin_bottom"),
		MinHeight:      cfg.Int("preview_height"),
		FontSize:       cfg.Int("preview_font_size"),
		FontWeight:     cfg.Int("preview_font_weight"),
		AlignItems:     cfg.Str("preview_align_items"),
		JustifyContent: eff.BarAlignment,
		ItemGap:        cfg.Int("preview_item_gap"),
		Slots:          slots,
		OriginalPrice: PriceTag{
			FontSize: cfg.Int("preview_original_price_size"),
			Color:    cfg.Str("preview_original_price_color"),
		},
		DiscountPrice: PriceTag{
			FontSize: cfg.Int("preview_discount_price_size"),
			Color:    cfg.Str("preview_discount_price_color"),
		},
		BuyButton: Button{
			Text:       cfg.Str("buy_btn_text"),
			Background: cfg.Str("buy_btn_color"),
			TextColor:  cfg.Str("buy_btn_text_color"),
			FontSize:   cfg.Int("buy_btn_font_size"),
			FontWeight: cfg.Int("buy_btn_font_weight"),
		},
	}
}

// slotGeometry maps the item shape tag to box geometry. Total over the three
// known tags; anything unrecognized renders as a square with the configured
// radius, never an error.
func slotGeometry(shape string, baseSize, radius int) Slot {
	switch shape {
	case "circle":
		// A perfect circle regardless of the configured radius.
		return Slot{Width: baseSize, Height: baseSize, BorderRadius: Radius{Pct: 50}}
	case "rectangle":
		return Slot{
			Width:        int(float64(baseSize) * rectWidthFactor),
			Height:       int(float64(baseSize) * rectHeightFactor),
			BorderRadius: Radius{Px: radius},
		}
	default:
		return Slot{Width: baseSize, Height: baseSize, BorderRadius: Radius{Px: radius}}
	}
}

func renderHeading(cfg combo.Config) HeadingBlock {
	return HeadingBlock{
		PaddingTop:    cfg.Int("header_padding_top"),
		PaddingBottom: cfg.Int("header_padding_bottom"),
		Title: TextBlock{
			Text:       cfg.Str("collection_title"),
			Align:      cfg.Str("heading_align"),
			FontSize:   cfg.Int("heading_size"),
			Color:      cfg.Str("heading_color"),
			FontWeight: cfg.Int("heading_weight"),
		},
		Description: TextBlock{
			Text:       cfg.Str("collection_description"),
			Align:      cfg.Str("description_align"),
			FontSize:   cfg.Int("description_size"),
			Color:      cfg.Str("description_color"),
			FontWeight: cfg.Int("description_weight"),
		},
	}
}

func renderGrid(cfg combo.Config, eff Effective) ProductGrid {
	cards := make([]ProductCard, placeholderCards)
	for i := range cards {
		cards[i] = ProductCard{
			Label:       fmt.Sprintf("Product %d", i+1),
			ImageHeight: eff.ProductImageHeight,
			TitleSize:   eff.ProductTitleSize,
			PriceSize:   eff.ProductPriceSize,
			MinHeight:   eff.CardHeight,
		}
	}

	return ProductGrid{
		Columns:          eff.Columns,
		Gap:              cfg.Int("products_gap"),
		PaddingTop:       cfg.Int("products_padding_top"),
		PaddingBottom:    cfg.Int("products_padding_bottom"),
		MarginTop:        cfg.Int("products_margin_top"),
		MarginBottom:     cfg.Int("products_margin_bottom"),
		CardPadding:      cfg.Int("product_card_padding"),
		CardBorderRadius: cfg.Int("card_border_radius"),
		Cards:            cards,
		AddButton: Button{
			Text:       cfg.Str("product_add_btn_text"),
			Background: cfg.Str("product_add_btn_color"),
			TextColor:  cfg.Str("product_add_btn_text_color"),
			FontSize:   cfg.Int("product_add_btn_font_size"),
			FontWeight: cfg.Int("product_add_btn_font_weight"),
		},
	}
}
