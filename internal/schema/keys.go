package schema

// Keys referenced from other packages by name.
const (
	KeyHasDiscountOffer   = "has_discount_offer"
	KeySelectedDiscountID = "selected_discount_id"
	KeyMaxSelections      = "max_selections"
)

func px(key string, def, min, max int, section string) Descriptor {
	return Descriptor{Key: key, Kind: KindPixelInt, Min: min, Max: max, Default: def, Section: section}
}

func pct(key string, def, min, max int, section string) Descriptor {
	return Descriptor{Key: key, Kind: KindPercent, Min: min, Max: max, Default: def, Section: section}
}

func weight(key string, def, min, max int, section string) Descriptor {
	return Descriptor{Key: key, Kind: KindWeight, Min: min, Max: max, Default: def, Section: section}
}

func color(key, def, section string) Descriptor {
	return Descriptor{Key: key, Kind: KindColorHex, Default: def, Section: section}
}

func enum(key, def string, allowed []string, section string) Descriptor {
	return Descriptor{Key: key, Kind: KindEnum, Allowed: allowed, Default: def, Section: section}
}

func boolean(key string, def bool, section string) Descriptor {
	return Descriptor{Key: key, Kind: KindBool, Default: def, Section: section}
}

var (
	alignOptions   = []string{"flex-start", "center", "flex-end", "space-between"}
	alignItemsOpts = []string{"flex-start", "center", "flex-end"}
	textAlignOpts  = []string{"left", "center", "right"}
	shapeOptions   = []string{"circle", "square", "rectangle"}
	layoutOptions  = []string{"layout1", "layout2", "layout3", "layout4"}
	desktopColOpts = []string{"2", "3", "4"}
	mobileColOpts  = []string{"1", "2"}
)

// All returns every parameter descriptor, grouped by section.
// The set is closed: adding a key here is the only way to make it configurable.
func All() []Descriptor {
	var out []Descriptor
	out = append(out, containerKeys()...)
	out = append(out, bannerKeys()...)
	out = append(out, selectionBarKeys()...)
	out = append(out, contentKeys()...)
	out = append(out, gridKeys()...)
	out = append(out, buttonKeys()...)
	out = append(out, discountKeys()...)
	return out
}

func containerKeys() []Descriptor {
	return []Descriptor{
		px("container_padding_desktop", 0, 0, 100, SectionContainer),
		px("container_padding_mobile", 0, 0, 100, SectionContainer),
		px("container_padding_top_desktop", 0, 0, 100, SectionContainer),
		px("container_padding_right_desktop", 0, 0, 100, SectionContainer),
		px("container_padding_bottom_desktop", 0, 0, 100, SectionContainer),
		px("container_padding_left_desktop", 0, 0, 100, SectionContainer),
		px("container_padding_top_mobile", 0, 0, 100, SectionContainer),
		px("container_padding_right_mobile", 0, 0, 100, SectionContainer),
		px("container_padding_bottom_mobile", 0, 0, 100, SectionContainer),
		px("container_padding_left_mobile", 0, 0, 100, SectionContainer),
		enum("layout", "layout1", layoutOptions, SectionContainer),
	}
}

func bannerKeys() []Descriptor {
	return []Descriptor{
		boolean("show_banner", true, SectionBanner),
		pct("banner_width_desktop", 100, 50, 100, SectionBanner),
		px("banner_height_desktop", 300, 150, 600, SectionBanner),
		pct("banner_width_mobile", 100, 50, 100, SectionBanner),
		px("banner_height_mobile", 200, 100, 400, SectionBanner),
		px("banner_padding_top", 0, 0, 80, SectionBanner),
		px("banner_padding_bottom", 10, 0, 80, SectionBanner),
	}
}

func selectionBarKeys() []Descriptor {
	return []Descriptor{
		color("preview_bg_color", "#e0ca9b", SectionBar),
		color("preview_text_color", "#333", SectionBar),
		color("preview_item_border_color", "#333", SectionBar),
		px("preview_height", 100, 60, 200, SectionBar),
		px("preview_font_size", 14, 12, 24, SectionBar),
		weight("preview_font_weight", 600, 400, 700, SectionBar),
		px("preview_item_size", 60, 40, 120, SectionBar),
		px("preview_item_gap", 12, 0, 32, SectionBar),
		px("preview_border_radius", 5, 0, 50, SectionBar),
		px("preview_padding", 20, 5, 30, SectionBar),
		px("preview_padding_top", 0, 0, 80, SectionBar),
		px("preview_padding_bottom", 10, 0, 80, SectionBar),
		px("preview_margin_top", 0, 0, 80, SectionBar),
		px("preview_margin_bottom", 12, 0, 80, SectionBar),
		enum("preview_alignment", "flex-start", alignOptions, SectionBar),
		enum("preview_alignment_mobile", "flex-start", alignOptions, SectionBar),
		enum("preview_align_items", "center", alignItemsOpts, SectionBar),
		enum("preview_item_shape", "circle", shapeOptions, SectionBar),
		px("preview_original_price_size", 14, 12, 24, SectionBar),
		px("preview_discount_price_size", 18, 12, 28, SectionBar),
		color("preview_original_price_color", "#999", SectionBar),
		color("preview_discount_price_color", "#000", SectionBar),
	}
}

func contentKeys() []Descriptor {
	return []Descriptor{
		{Key: "collection_title", Kind: KindShortText, Default: "Build Your Combo", Section: SectionContent},
		{
			Key:     "collection_description",
			Kind:    KindLongText,
			Default: "Select your favorite products and enjoy exclusive discounts",
			Section: SectionContent,
		},
		enum("heading_align", "left", textAlignOpts, SectionContent),
		px("heading_size", 28, 16, 48, SectionContent),
		color("heading_color", "#000000", SectionContent),
		weight("heading_weight", 700, 400, 700, SectionContent),
		enum("description_align", "left", textAlignOpts, SectionContent),
		px("description_size", 16, 12, 32, SectionContent),
		color("description_color", "#666666", SectionContent),
		weight("description_weight", 400, 300, 700, SectionContent),
		px("header_padding_top", 0, 0, 80, SectionContent),
		px("header_padding_bottom", 10, 0, 80, SectionContent),
	}
}

func gridKeys() []Descriptor {
	return []Descriptor{
		enum("desktop_columns", "3", desktopColOpts, SectionGrid),
		enum("mobile_columns", "2", mobileColOpts, SectionGrid),
		px("products_padding_top", 0, 0, 80, SectionGrid),
		px("products_padding_bottom", 0, 0, 80, SectionGrid),
		px("products_margin_top", 12, 0, 80, SectionGrid),
		px("products_margin_bottom", 0, 0, 80, SectionGrid),
		px("products_gap", 12, 0, 32, SectionGrid),
		px("product_card_padding", 10, 0, 30, SectionGrid),
		px("product_image_height_desktop", 250, 150, 400, SectionGrid),
		px("product_image_height_mobile", 200, 120, 350, SectionGrid),
		px("product_title_size_desktop", 14, 12, 28, SectionGrid),
		px("product_title_size_mobile", 14, 12, 28, SectionGrid),
		px("product_price_size_desktop", 16, 12, 28, SectionGrid),
		px("product_price_size_mobile", 16, 12, 28, SectionGrid),
		px("card_border_radius", 10, 0, 24, SectionGrid),
		px("card_height_desktop", 0, 0, 800, SectionGrid),
		px("card_height_mobile", 0, 0, 800, SectionGrid),
	}
}

func buttonKeys() []Descriptor {
	return []Descriptor{
		{Key: "buy_btn_text", Kind: KindShortText, Default: "Proceed to checkout", Section: SectionButtons},
		color("buy_btn_color", "#000", SectionButtons),
		color("buy_btn_text_color", "#fff", SectionButtons),
		px("buy_btn_font_size", 14, 10, 28, SectionButtons),
		weight("buy_btn_font_weight", 700, 400, 700, SectionButtons),
		{Key: "product_add_btn_text", Kind: KindShortText, Default: "Add", Section: SectionButtons},
		color("product_add_btn_color", "#000", SectionButtons),
		color("product_add_btn_text_color", "#fff", SectionButtons),
		px("product_add_btn_font_size", 14, 10, 28, SectionButtons),
		weight("product_add_btn_font_weight", 600, 400, 700, SectionButtons),
	}
}

func discountKeys() []Descriptor {
	return []Descriptor{
		{Key: "discount_rule", Kind: KindShortText, Default: "default", Section: SectionDiscount},
		px(KeyMaxSelections, 3, 1, 10, SectionDiscount),
		boolean(KeyHasDiscountOffer, false, SectionDiscount),
	}
}
