package models

// InterceptorOutputVersion is the only output envelope version emitted by the interceptor.
const InterceptorOutputVersion = "1.0"

// Headers is a case-sensitive header mapping.
type Headers map[string]string

// InterceptorInput is the envelope the gateway sends to the interceptor.
type InterceptorInput struct {
	InterceptorInputVersion string    `json:"interceptorInputVersion"`
	MCP                     *InputMCP `json:"mcp"`
}

// InputMCP holds the raw and structured views of the intercepted request.
type InputMCP struct {
	RawGatewayRequest RawGatewayRequest `json:"rawGatewayRequest"`
	GatewayRequest    *GatewayRequest   `json:"gatewayRequest"`
}

// RawGatewayRequest carries the unparsed request body. It is informational only.
type RawGatewayRequest struct {
	Body string `json:"body"`
}

// GatewayRequest is the structured request being intercepted.
type GatewayRequest struct {
	Path       string         `json:"path"`
	HTTPMethod string         `json:"httpMethod"`
	Headers    Headers        `json:"headers,omitempty"`
	Body       map[string]any `json:"body"`
}

// InterceptorOutput is the envelope returned to the gateway.
type InterceptorOutput struct {
	InterceptorOutputVersion string     `json:"interceptorOutputVersion"`
	MCP                      *OutputMCP `json:"mcp"`
}

// OutputMCP holds the rewritten request and, when short-circuiting, the response.
type OutputMCP struct {
	TransformedGatewayRequest  TransformedGatewayRequest   `json:"transformedGatewayRequest"`
	TransformedGatewayResponse *TransformedGatewayResponse `json:"transformedGatewayResponse,omitempty"`
}

// TransformedGatewayRequest is the request forwarded to the backend.
type TransformedGatewayRequest struct {
	Headers Headers        `json:"headers,omitempty"`
	Body    map[string]any `json:"body"`
}

// TransformedGatewayResponse short-circuits the backend call when present.
type TransformedGatewayResponse struct {
	StatusCode int            `json:"statusCode"`
	Body       map[string]any `json:"body"`
}
