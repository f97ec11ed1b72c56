package shopify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/merchkit/combobuilder/internal/shopify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{
	"data": {
		"discountCodeBasicCreate": {
			"codeDiscountNode": {
				"id": "gid://shopify/DiscountCodeNode/123",
				"codeDiscount": {
					"title": "Summer Sale",
					"codes": {"edges": [{"node": {"code": "SUMMERSALE"}}]}
				}
			},
			"userErrors": []
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *shopify.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return shopify.New(shopify.Options{
		Shop:    "test-shop.myshopify.com",
		Token:   "shpat_test",
		BaseURL: srv.URL,
	})
}

func capturedVariables(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var req struct {
		Variables struct {
			Input map[string]any `json:"input"`
		} `json:"variables"`
	}
	require.NoError(t, json.Unmarshal(body, &req))
	return req.Variables.Input
}

func TestCreateCodeDiscount_PercentageAsFraction(t *testing.T) {
	var input map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		input = capturedVariables(t, body)

		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(successBody))
	})

	created, err := client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{
		Title: "Summer Sale",
		Type:  "percentage",
		Value: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/DiscountCodeNode/123", created.ID)
	assert.Equal(t, "SUMMERSALE", created.Code)

	customerGets := input["customerGets"].(map[string]any)
	value := customerGets["value"].(map[string]any)
	assert.InDelta(t, 0.20, value["percentage"], 1e-9, "percent input travels as a fraction")

	assert.Equal(t, "SUMMERSALE", input["code"], "code derives from the title")
	assert.NotEmpty(t, input["startsAt"])
	assert.Nil(t, input["usageLimit"])
}

func TestCreateCodeDiscount_AmountShape(t *testing.T) {
	var input map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		input = capturedVariables(t, body)
		_, _ = w.Write([]byte(successBody))
	})

	_, err := client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{
		Title: "Fixed Off",
		Code:  "takefive",
		Type:  "fixed",
		Value: 5,
	})
	require.NoError(t, err)

	customerGets := input["customerGets"].(map[string]any)
	amount := customerGets["value"].(map[string]any)["discountAmount"].(map[string]any)
	assert.Equal(t, float64(5), amount["amount"])
	assert.Equal(t, false, amount["appliesOnEachItem"])
	assert.Equal(t, "TAKEFIVE", input["code"], "supplied code is uppercased")
}

func TestCreateCodeDiscount_MissingFields(t *testing.T) {
	client := shopify.New(shopify.Options{Shop: "s.myshopify.com"})

	_, err := client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{Title: "", Value: 10})
	require.ErrorIs(t, err, shopify.ErrMissingFields)

	_, err = client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{Title: "No value"})
	require.ErrorIs(t, err, shopify.ErrMissingFields)
}

func TestCreateCodeDiscount_UserErrorSurfacedVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"discountCodeBasicCreate": {
					"codeDiscountNode": null,
					"userErrors": [{"code": "TAKEN", "message": "Code is already in use", "field": ["code"]}]
				}
			}
		}`))
	})

	_, err := client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{
		Title: "Dup", Type: "percentage", Value: 10,
	})
	var svcErr *shopify.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Code is already in use", svcErr.Message)
}

func TestCreateCodeDiscount_TopLevelErrorSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "Throttled"}]}`))
	})

	_, err := client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{
		Title: "Busy", Type: "percentage", Value: 10,
	})
	var svcErr *shopify.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Throttled", svcErr.Message)
}

func TestCreateCodeDiscount_TransportFailureIsInternal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.CreateCodeDiscount(context.Background(), shopify.CreateDiscountInput{
		Title: "Down", Type: "percentage", Value: 10,
	})
	require.Error(t, err)
	var svcErr *shopify.ServiceError
	assert.False(t, errors.As(err, &svcErr), "transport failures are not service errors")
}
