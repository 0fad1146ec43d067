package handler

import (
	"log/slog"

	"github.com/isometry/gateway-interceptor/internal/models"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithAdditionalHeaders sets headers applied over the incoming ones on the forwarded request.
func WithAdditionalHeaders(headers models.Headers) Option {
	return func(h *Handler) {
		h.additionalHeaders = headers
	}
}

// WithReservedHeaderPrefix overrides the prefix of headers kept out of the request arguments.
func WithReservedHeaderPrefix(prefix string) Option {
	return func(h *Handler) {
		h.reservedPrefix = prefix
	}
}

// WithArgumentPrefix overrides the prefix used when injecting headers into the request arguments.
func WithArgumentPrefix(prefix string) Option {
	return func(h *Handler) {
		h.argumentPrefix = prefix
	}
}
