package preview_test

import (
	"testing"

	"github.com/merchkit/combobuilder/internal/combo"
	"github.com/merchkit/combobuilder/internal/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDefault(t *testing.T, device preview.Device) *preview.RenderTree {
	t.Helper()
	tree, err := preview.Render(combo.NewDefault(), device)
	require.NoError(t, err)
	return tree
}

func TestRender_ViewportPerDevice(t *testing.T) {
	assert.Equal(t, 1280, renderDefault(t, preview.DeviceDesktop).ViewportWidth)
	assert.Equal(t, 430, renderDefault(t, preview.DeviceMobile).ViewportWidth)
}

func TestRender_InvalidDevice(t *testing.T) {
	_, err := preview.Render(combo.NewDefault(), preview.Device("watch"))
	require.ErrorIs(t, err, preview.ErrInvalidDevice)
}

func TestRender_BannerToggle(t *testing.T) {
	store := combo.NewStore()
	require.NotNil(t, renderDefault(t, preview.DeviceDesktop).Banner, "banner shows by default")

	require.NoError(t, store.Set("show_banner", false))
	tree, err := preview.Render(store.Snapshot(), preview.DeviceDesktop)
	require.NoError(t, err)
	assert.Nil(t, tree.Banner)
}

func TestRender_BannerUsesDeviceValues(t *testing.T) {
	store := combo.NewStore()
	require.NoError(t, store.Set("banner_width_mobile", 70))
	require.NoError(t, store.Set("banner_height_mobile", 150))

	tree, err := preview.Render(store.Snapshot(), preview.DeviceMobile)
	require.NoError(t, err)
	require.NotNil(t, tree.Banner)
	assert.Equal(t, 70, tree.Banner.WidthPct)
	assert.Equal(t, 150, tree.Banner.HeightPx)
}

func TestRender_SlotCountFollowsMaxSelections(t *testing.T) {
	store := combo.NewStore()
	require.NoError(t, store.Set("max_selections", 5))

	tree, err := preview.Render(store.Snapshot(), preview.DeviceDesktop)
	require.NoError(t, err)
	assert.Len(t, tree.SelectionBar.Slots, 5)

	// Out-of-range input is clamped before it ever reaches the renderer.
	require.NoError(t, store.Set("max_selections", 11))
	tree, err = preview.Render(store.Snapshot(), preview.DeviceDesktop)
	require.NoError(t, err)
	assert.Len(t, tree.SelectionBar.Slots, 10)
}

func TestRender_SlotShapeGeometry(t *testing.T) {
	tests := []struct {
		shape     string
		size      int
		radius    int
		wantW     int
		wantH     int
		wantRad   preview.Radius
		assertion string
	}{
		{"circle", 60, 5, 60, 60, preview.Radius{Pct: 50}, "circle forces a 50% radius"},
		{"square", 60, 8, 60, 60, preview.Radius{Px: 8}, "square keeps the configured radius"},
		{"rectangle", 60, 8, 84, 48, preview.Radius{Px: 8}, "rectangle stretches 1.4x/0.8x"},
	}
	for _, tc := range tests {
		t.Run(tc.shape, func(t *testing.T) {
			store := combo.NewStore()
			require.NoError(t, store.Set("preview_item_shape", tc.shape))
			require.NoError(t, store.Set("preview_item_size", tc.size))
			require.NoError(t, store.Set("preview_border_radius", tc.radius))

			tree, err := preview.Render(store.Snapshot(), preview.DeviceDesktop)
			require.NoError(t, err)
			require.NotEmpty(t, tree.SelectionBar.Slots)
			slot := tree.SelectionBar.Slots[0]
			assert.Equal(t, tc.wantW, slot.Width, tc.assertion)
			assert.Equal(t, tc.wantH, slot.Height, tc.assertion)
			assert.Equal(t, tc.wantRad, slot.BorderRadius, tc.assertion)
		})
	}
}

func TestRender_GridAlwaysThreeCards(t *testing.T) {
	for _, device := range []preview.Device{preview.DeviceDesktop, preview.DeviceMobile} {
		tree := renderDefault(t, device)
		assert.Len(t, tree.Grid.Cards, 3)
	}
}

func TestRender_GridColumnsPerDevice(t *testing.T) {
	store := combo.NewStore()
	require.NoError(t, store.Set("desktop_columns", "4"))
	require.NoError(t, store.Set("mobile_columns", "1"))
	cfg := store.Snapshot()

	desktop, err := preview.Render(cfg, preview.DeviceDesktop)
	require.NoError(t, err)
	assert.Equal(t, 4, desktop.Grid.Columns)

	mobile, err := preview.Render(cfg, preview.DeviceMobile)
	require.NoError(t, err)
	assert.Equal(t, 1, mobile.Grid.Columns)
}

func TestRender_HeadingBlock(t *testing.T) {
	store := combo.NewStore()
	require.NoError(t, store.Set("collection_title", "Snack Pack"))
	require.NoError(t, store.Set("heading_align", "center"))

	tree, err := preview.Render(store.Snapshot(), preview.DeviceDesktop)
	require.NoError(t, err)
	assert.Equal(t, "Snack Pack", tree.Heading.Title.Text)
	assert.Equal(t, "center", tree.Heading.Title.Align)
	assert.Equal(t, 28, tree.Heading.Title.FontSize)
}

func TestRender_DiscountStateCarriedThrough(t *testing.T) {
	store := combo.NewStore()
	store.AttachCreatedDiscount(9)

	tree, err := preview.Render(store.Snapshot(), preview.DeviceDesktop)
	require.NoError(t, err)
	assert.True(t, tree.HasDiscountOffer)
	require.NotNil(t, tree.SelectedDiscountID)
	assert.Equal(t, int64(9), *tree.SelectedDiscountID)
}

func TestRender_Deterministic(t *testing.T) {
	cfg := combo.NewDefault()
	a, err := preview.Render(cfg, preview.DeviceMobile)
	require.NoError(t, err)
	b, err := preview.Render(cfg, preview.DeviceMobile)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
