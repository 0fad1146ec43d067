// Package handler implements the gateway interceptor transform: header propagation, header filtering and
// request argument reshaping.
package handler

import (
	"log/slog"

	"github.com/isometry/gateway-interceptor/internal/helpers"
	"github.com/isometry/gateway-interceptor/internal/models"
)

const rawBodyLogLimit = 512

// Option configures a Handler.
type Option func(*Handler)

// Handler transforms interceptor input envelopes into output envelopes. It holds no per-call state.
type Handler struct {
	logger            *slog.Logger
	additionalHeaders models.Headers
	reservedPrefix    string
	argumentPrefix    string
}

// NewInterceptorHandler creates a Handler with the default prefixes and no additional headers.
func NewInterceptorHandler(options ...Option) *Handler {
	_inst := &Handler{
		logger:         helpers.NewNoopLogger(),
		reservedPrefix: DefaultReservedHeaderPrefix,
		argumentPrefix: DefaultArgumentPrefix,
	}
	for _, opt := range options {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// Process rewrites the intercepted request. Forwarded headers are the incoming headers plus any
// additional headers; non-reserved headers are also injected into params.arguments of the body.
func (h *Handler) Process(input models.InterceptorInput) (models.InterceptorOutput, error) {
	logger := h.logger.With(slog.String("inputVersion", input.InterceptorInputVersion))

	if input.MCP == nil {
		return models.InterceptorOutput{}, &MalformedInputError{Field: "mcp"}
	}
	if input.MCP.GatewayRequest == nil {
		return models.InterceptorOutput{}, &MalformedInputError{Field: "mcp.gatewayRequest"}
	}
	req := input.MCP.GatewayRequest

	logger = logger.With(slog.String("method", req.HTTPMethod), slog.String("path", req.Path))
	logger.Debug("processing interceptor request...",
		slog.String("rawBody", helpers.Truncate(input.MCP.RawGatewayRequest.Body, rawBodyLogLimit)),
		helpers.SafeJSON("input", input))

	forwarded := PropagateHeaders(req.Headers, h.additionalHeaders)
	logger.Debug("propagated headers", helpers.SafeJSON("headers", forwarded))

	filtered := FilterAndPrefixHeaders(req.Headers, h.reservedPrefix, h.argumentPrefix)
	logger.Debug("filtered headers",
		slog.Int("incoming", len(req.Headers)),
		slog.Int("injected", len(filtered)),
		helpers.SafeJSON("headers", filtered))

	body := MergeArguments(req.Body, filtered)
	logger.Debug("merged request body", helpers.SafeJSON("body", body))

	output := models.InterceptorOutput{
		InterceptorOutputVersion: models.InterceptorOutputVersion,
		MCP: &models.OutputMCP{
			TransformedGatewayRequest: models.TransformedGatewayRequest{
				Headers: forwarded,
				Body:    body,
			},
		},
	}
	logger.Debug("interceptor request processed", helpers.SafeJSON("output", output))
	return output, nil
}

// NewTransformedGatewayResponse builds a response that short-circuits the backend call. body is not copied.
func NewTransformedGatewayResponse(statusCode int, body map[string]any) *models.TransformedGatewayResponse {
	return &models.TransformedGatewayResponse{
		StatusCode: statusCode,
		Body:       body,
	}
}
