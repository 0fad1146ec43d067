package runtime

import (
	"maps"
	"strings"

	"github.com/isometry/gateway-interceptor/internal/models"
)

const redactedValue = "[REDACTED]"

// DefaultRedactedHeaders are the credential-bearing headers masked in audit records.
var DefaultRedactedHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie", "X-Api-Key"}

// redactor masks sensitive header values, both as headers and as injected request arguments.
// Header names match case-insensitively.
type redactor struct {
	names          map[string]struct{}
	argumentPrefix string
}

func newRedactor(names []string, argumentPrefix string) redactor {
	rd := redactor{names: make(map[string]struct{}, len(names)), argumentPrefix: argumentPrefix}
	for _, name := range names {
		rd.names[strings.ToLower(name)] = struct{}{}
	}
	return rd
}

func (rd redactor) sensitive(name string) bool {
	_, found := rd.names[strings.ToLower(name)]
	return found
}

func (rd redactor) headers(h models.Headers) models.Headers {
	if h == nil {
		return nil
	}
	out := make(models.Headers, len(h))
	for k, v := range h {
		if rd.sensitive(k) {
			v = redactedValue
		}
		out[k] = v
	}
	return out
}

// arguments returns body with sensitive params.arguments entries masked. body is returned as-is when
// nothing matches; otherwise the touched levels are copied.
func (rd redactor) arguments(body map[string]any) map[string]any {
	params, ok := body["params"].(map[string]any)
	if !ok {
		return body
	}
	arguments, ok := params["arguments"].(map[string]any)
	if !ok {
		return body
	}

	var redacted map[string]any
	for k := range arguments {
		name, found := strings.CutPrefix(k, rd.argumentPrefix)
		if !found || !rd.sensitive(name) {
			continue
		}
		if redacted == nil {
			redacted = maps.Clone(arguments)
		}
		redacted[k] = redactedValue
	}
	if redacted == nil {
		return body
	}

	p := maps.Clone(params)
	p["arguments"] = redacted
	out := maps.Clone(body)
	out["params"] = p
	return out
}

func (rd redactor) input(input models.InterceptorInput) models.InterceptorInput {
	if input.MCP == nil {
		return input
	}
	mcp := *input.MCP
	if mcp.GatewayRequest != nil {
		req := *mcp.GatewayRequest
		req.Headers = rd.headers(req.Headers)
		req.Body = rd.arguments(req.Body)
		mcp.GatewayRequest = &req
	}
	input.MCP = &mcp
	return input
}

func (rd redactor) output(output models.InterceptorOutput) models.InterceptorOutput {
	if output.MCP == nil {
		return output
	}
	mcp := *output.MCP
	mcp.TransformedGatewayRequest.Headers = rd.headers(mcp.TransformedGatewayRequest.Headers)
	mcp.TransformedGatewayRequest.Body = rd.arguments(mcp.TransformedGatewayRequest.Body)
	output.MCP = &mcp
	return output
}
