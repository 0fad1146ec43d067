package handler

import (
	"strings"

	"github.com/isometry/gateway-interceptor/internal/models"
)

const (
	// DefaultReservedHeaderPrefix marks gateway-internal headers that are never injected into the body.
	DefaultReservedHeaderPrefix = "x-amzn"
	// DefaultArgumentPrefix is prepended to header names injected into the request arguments.
	DefaultArgumentPrefix = "mcp_header_"
)

// PropagateHeaders returns a new mapping holding every incoming header with the additional headers applied on top.
// Keys are matched exactly; additional values win on collision.
func PropagateHeaders(incoming, additional models.Headers) models.Headers {
	out := make(models.Headers, len(incoming)+len(additional))
	for k, v := range incoming {
		out[k] = v
	}
	for k, v := range additional {
		out[k] = v
	}
	return out
}

// FilterAndPrefixHeaders drops headers starting with reservedPrefix (case-insensitive)
// and renames the remainder to argumentPrefix+name.
func FilterAndPrefixHeaders(incoming models.Headers, reservedPrefix, argumentPrefix string) models.Headers {
	reservedPrefix = strings.ToLower(reservedPrefix)
	out := make(models.Headers, len(incoming))
	for k, v := range incoming {
		if strings.HasPrefix(strings.ToLower(k), reservedPrefix) {
			continue
		}
		out[argumentPrefix+k] = v
	}
	return out
}
