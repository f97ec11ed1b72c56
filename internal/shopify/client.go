// Package shopify creates storefront discount codes through the admin
// GraphQL API. It covers exactly the one mutation the combo builder needs.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/logging"
)

const createDiscountMutation = `
mutation CreateCodeDiscount($input: DiscountCodeBasicInput!) {
  discountCodeBasicCreate(basicCodeDiscount: $input) {
    codeDiscountNode {
      id
      codeDiscount {
        ... on DiscountCodeBasic {
          title
          codes(first: 1) {
            edges {
              node {
                code
              }
            }
          }
        }
      }
    }
    userErrors {
      code
      message
      field
    }
  }
}`

// ErrMissingFields reports a creation request without title or value.
var ErrMissingFields = errors.New("title and value are required")

// ServiceError carries a message returned by the platform itself, either a
// top-level GraphQL error or a mutation userError. The message is surfaced
// to the caller verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Options configures a Client.
type Options struct {
	Shop       string // e.g. "my-store.myshopify.com"
	Token      string // admin API access token
	APIVersion string
	BaseURL    string // override for tests; defaults to https://<shop>
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client talks to one shop's admin GraphQL endpoint.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a Client for the given shop.
func New(opts Options) *Client {
	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-10"
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://" + opts.Shop
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		endpoint:   fmt.Sprintf("%s/admin/api/%s/graphql.json", baseURL, apiVersion),
		token:      opts.Token,
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// CreateCodeDiscount creates a basic code discount and returns its identity.
// Platform-reported problems come back as *ServiceError; anything else is an
// internal failure.
func (c *Client) CreateCodeDiscount(ctx context.Context, in CreateDiscountInput) (*CreatedDiscount, error) {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(in.Title) == "" || in.Value <= 0 {
		return nil, ErrMissingFields
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(graphqlRequest{
		Query:     createDiscountMutation,
		Variables: map[string]any{"input": buildInput(in)},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("admin API %s: %s", resp.Status, strings.TrimSpace(string(rawBody)))
	}

	var decoded graphqlResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		return nil, &ServiceError{Message: decoded.Errors[0].Message}
	}

	payload := decoded.Data.payload()
	if len(payload.UserErrors) > 0 {
		return nil, &ServiceError{Message: payload.UserErrors[0].Message}
	}
	if payload.CodeDiscountNode == nil {
		return nil, fmt.Errorf("response missing discount node")
	}

	created := &CreatedDiscount{
		ID:    payload.CodeDiscountNode.ID,
		Title: payload.CodeDiscountNode.CodeDiscount.Title,
	}
	if edges := payload.CodeDiscountNode.CodeDiscount.Codes.Edges; len(edges) > 0 {
		created.Code = edges[0].Node.Code
	}

	log.Info().Str("discount_id", created.ID).Str("code", created.Code).Msg("storefront discount created")
	return created, nil
}

// buildInput assembles the mutation variables. Percentages travel as a 0-1
// fraction; amount-off values apply once per order, not per item.
func buildInput(in CreateDiscountInput) map[string]any {
	code := in.Code
	if code == "" {
		code = entity.CodeFromTitle(in.Title)
	}

	startsAt := in.StartsAt
	if startsAt == "" {
		startsAt = time.Now().UTC().Format(time.RFC3339)
	}

	var endsAt any
	if in.EndsAt != "" {
		endsAt = in.EndsAt
	}

	var value map[string]any
	if in.Type == "percentage" {
		value = map[string]any{"percentage": in.Value / 100}
	} else {
		value = map[string]any{
			"discountAmount": map[string]any{
				"amount":            in.Value,
				"appliesOnEachItem": false,
			},
		}
	}

	return map[string]any{
		"title":    in.Title,
		"code":     strings.ToUpper(code),
		"startsAt": startsAt,
		"endsAt":   endsAt,
		"customerSelection": map[string]any{
			"all": true,
		},
		"customerGets": map[string]any{
			"value": value,
			"items": map[string]any{
				"all": true,
			},
		},
		"appliesOncePerCustomer": in.OncePerCustomer,
		"usageLimit":             nil,
	}
}

// payload tolerates a response without a data object.
func (d *responseData) payload() *discountCreatePayload {
	if d == nil || d.DiscountCodeBasicCreate == nil {
		return &discountCreatePayload{}
	}
	return d.DiscountCodeBasicCreate
}
