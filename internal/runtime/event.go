package runtime

import (
	"encoding/json"
)

type eventKind int

const (
	eventUnknown eventKind = iota
	eventInterceptor
	eventHTTPv1
	eventHTTPv2
)

func (k eventKind) String() string {
	switch k {
	case eventInterceptor:
		return "interceptor"
	case eventHTTPv1:
		return "api-gateway-v1"
	case eventHTTPv2:
		return "api-gateway-v2"
	default:
		return "unknown"
	}
}

// eventShape holds the discriminant fields of every supported invocation payload.
type eventShape struct {
	InterceptorInputVersion *string         `json:"interceptorInputVersion"`
	MCP                     json.RawMessage `json:"mcp"`
	Version                 string          `json:"version"`
	RawPath                 *string         `json:"rawPath"`
	HTTPMethod              *string         `json:"httpMethod"`
	Path                    *string         `json:"path"`
}

// classify inspects the discriminant fields of raw. Interceptor events take precedence over proxy events.
func classify(raw []byte) (eventKind, error) {
	var shape eventShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return eventUnknown, &UnknownEventError{Cause: err}
	}

	switch {
	case shape.InterceptorInputVersion != nil && len(shape.MCP) > 0 && string(shape.MCP) != "null":
		return eventInterceptor, nil
	case shape.Version == "2.0" && shape.RawPath != nil:
		return eventHTTPv2, nil
	case shape.HTTPMethod != nil && shape.Path != nil:
		return eventHTTPv1, nil
	default:
		return eventUnknown, &UnknownEventError{}
	}
}
