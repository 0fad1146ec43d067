package handler

import (
	"maps"

	"github.com/isometry/gateway-interceptor/internal/models"
)

const (
	paramsKey    = "params"
	argumentsKey = "arguments"
)

// MergeArguments returns a shallow copy of body whose params.arguments object is extended with the given headers.
// A missing or non-object params or arguments value is replaced by an empty object. The input body is never mutated.
func MergeArguments(body map[string]any, headers models.Headers) map[string]any {
	out := maps.Clone(body)
	if out == nil {
		out = make(map[string]any, 1)
	}

	params := cloneObject(out[paramsKey])
	arguments := cloneObject(params[argumentsKey])
	for k, v := range headers {
		arguments[k] = v
	}

	params[argumentsKey] = arguments
	out[paramsKey] = params
	return out
}

func cloneObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok && m != nil {
		return maps.Clone(m)
	}
	return make(map[string]any)
}
