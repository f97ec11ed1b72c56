package shopify

// CreateDiscountInput describes a basic code discount to create on the
// storefront platform.
type CreateDiscountInput struct {
	Title           string
	Code            string // defaults to the title, uppercased without spaces
	Type            string // "percentage" or an amount-off type
	Value           float64
	StartsAt        string // RFC 3339; defaults to now
	EndsAt          string
	OncePerCustomer bool
}

// CreatedDiscount is the subset of the creation payload callers care about.
type CreatedDiscount struct {
	ID    string
	Title string
	Code  string
}

// graphqlRequest is the wire envelope for the admin GraphQL endpoint.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   *responseData  `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type responseData struct {
	DiscountCodeBasicCreate *discountCreatePayload `json:"discountCodeBasicCreate"`
}

type discountCreatePayload struct {
	CodeDiscountNode *codeDiscountNode `json:"codeDiscountNode"`
	UserErrors       []userError       `json:"userErrors"`
}

type userError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Field   []string `json:"field"`
}

type codeDiscountNode struct {
	ID           string       `json:"id"`
	CodeDiscount codeDiscount `json:"codeDiscount"`
}

type codeDiscount struct {
	Title string    `json:"title"`
	Codes codeEdges `json:"codes"`
}

type codeEdges struct {
	Edges []codeEdge `json:"edges"`
}

type codeEdge struct {
	Node codeNode `json:"node"`
}

type codeNode struct {
	Code string `json:"code"`
}
