package api_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit/combobuilder/internal/api"
	"github.com/merchkit/combobuilder/internal/combo"
	"github.com/merchkit/combobuilder/internal/infrastructure/persistence/memory"
)

func TestReceiverAppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "receiver.log")
	srv := api.New(api.Options{
		Store:           combo.NewStore(),
		Templates:       memory.NewTemplateRepository(),
		Discounts:       memory.NewDiscountRepository(),
		Shopify:         &fakeShopify{},
		ReceiverLogPath: logPath,
		Logger:          zerolog.Nop(),
	})
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	for _, event := range []string{"combo_added", "combo_checked_out"} {
		payload, err := json.Marshal(map[string]any{"event": event, "shop": "test-shop"})
		require.NoError(t, err)
		resp, err := http.Post(ts.URL+"/api/v1/receiver", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[map[string]any](t, resp)
		assert.Equal(t, true, body["success"])
	}

	file, err := os.Open(logPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	var entries []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, "combo_added", entries[0]["event"])
	assert.Equal(t, "combo_checked_out", entries[1]["event"])
	for _, entry := range entries {
		assert.NotEmpty(t, entry["timestamp"], "server stamps every entry")
		assert.Equal(t, "test-shop", entry["shop"])
	}
}

func TestReceiverRejectsMalformedJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "receiver.log")
	srv := api.New(api.Options{
		Store:           combo.NewStore(),
		Templates:       memory.NewTemplateRepository(),
		Discounts:       memory.NewDiscountRepository(),
		Shopify:         &fakeShopify{},
		ReceiverLogPath: logPath,
		Logger:          zerolog.Nop(),
	})
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	resp, err := http.Post(ts.URL+"/api/v1/receiver", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "nothing is logged for a rejected payload")
}
