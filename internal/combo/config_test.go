package combo_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/merchkit/combobuilder/internal/combo"
	"github.com/merchkit/combobuilder/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetClampsThroughPublicPath(t *testing.T) {
	store := combo.NewStore()

	require.NoError(t, store.Set("max_selections", 11))
	assert.Equal(t, 10, store.Snapshot().Int("max_selections"))

	require.NoError(t, store.Set("max_selections", "3"))
	assert.Equal(t, 3, store.Snapshot().Int("max_selections"))
}

func TestStore_SetUnknownKey(t *testing.T) {
	store := combo.NewStore()
	err := store.Set("no_such_key", 1)
	require.ErrorIs(t, err, combo.ErrUnknownKey)
}

func TestStore_SetPair(t *testing.T) {
	store := combo.NewStore()

	// Declared bounds are [0,100]; the shared raw input clamps on both keys.
	err := store.SetPair("container_padding_top_desktop", "container_padding_bottom_desktop", "250")
	require.NoError(t, err)

	cfg := store.Snapshot()
	assert.Equal(t, 100, cfg.Int("container_padding_top_desktop"))
	assert.Equal(t, 100, cfg.Int("container_padding_bottom_desktop"))
}

func TestStore_SetPairNormalizesPerDescriptor(t *testing.T) {
	store := combo.NewStore()

	// banner_width_desktop is bounded 50-100, banner_height_desktop 150-600.
	// One shared raw value, two different clamps.
	err := store.SetPair("banner_width_desktop", "banner_height_desktop", 120)
	require.NoError(t, err)

	cfg := store.Snapshot()
	assert.Equal(t, 100, cfg.Int("banner_width_desktop"))
	assert.Equal(t, 150, cfg.Int("banner_height_desktop"))
}

func TestStore_PairAtomicity(t *testing.T) {
	store := combo.NewStore()

	const (
		keyA = "preview_padding_top"
		keyB = "preview_padding_bottom"
	)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = store.SetPair(keyA, keyB, i%80)
		}
		close(stop)
	}()

	// Every snapshot must reflect a whole update: both halves equal.
	for {
		select {
		case <-stop:
			wg.Wait()
			return
		default:
		}
		cfg := store.Snapshot()
		assert.Equal(t, cfg.Int(keyA), cfg.Int(keyB))
	}
}

func TestFromJSON_ForwardCompatibleReload(t *testing.T) {
	// A document saved before new keys existed: only a handful of values.
	persisted := map[string]any{
		"heading_size":     34,
		"collection_title": "Bundle & Save",
		"unknown_future":   "ignored",
	}
	data, err := json.Marshal(persisted)
	require.NoError(t, err)

	cfg, err := combo.FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 34, cfg.Int("heading_size"))
	assert.Equal(t, "Bundle & Save", cfg.Str("collection_title"))
	_, present := cfg["unknown_future"]
	assert.False(t, present, "unknown keys are dropped")

	// Every declared key resolves, either persisted or defaulted.
	for _, d := range schema.All() {
		_, ok := cfg[d.Key]
		assert.True(t, ok, "missing value for %s after reload", d.Key)
	}
	assert.Equal(t, 3, cfg.Int("max_selections"), "untouched keys keep defaults")
}

func TestFromJSON_RenormalizesPersistedValues(t *testing.T) {
	data := []byte(`{"max_selections": 99, "preview_item_shape": "blob"}`)

	cfg, err := combo.FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Int("max_selections"), "hand-edited document cannot exceed bounds")
	assert.Equal(t, "circle", cfg.Str("preview_item_shape"))
}

func TestFromJSON_RepairsOrphanSelection(t *testing.T) {
	data := []byte(`{"has_discount_offer": false, "selected_discount_id": 4}`)

	cfg, err := combo.FromJSON(data)
	require.NoError(t, err)

	_, selected := cfg.SelectedDiscountID()
	assert.False(t, selected)
}

func TestStore_Reset(t *testing.T) {
	store := combo.NewStore()
	require.NoError(t, store.Set("heading_size", 40))

	store.Reset()
	assert.Equal(t, 28, store.Snapshot().Int("heading_size"))
}

func TestStore_OnCommit(t *testing.T) {
	store := combo.NewStore()

	var got []combo.Config
	store.OnCommit(func(cfg combo.Config) { got = append(got, cfg) })

	require.NoError(t, store.Set("heading_size", 30))
	require.NoError(t, store.SetPair("header_padding_top", "header_padding_bottom", 5))

	require.Len(t, got, 2)
	assert.Equal(t, 30, got[0].Int("heading_size"))
	assert.Equal(t, 5, got[1].Int("header_padding_top"))
	assert.Equal(t, 5, got[1].Int("header_padding_bottom"))
}
