package runtime

import (
	"log/slog"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger of the runtime.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPath sets the route served on proxied HTTP events.
func WithPath(path string) Option {
	return func(r *Runtime) {
		r.path = path
	}
}

// WithAuditStore enables uploading every processed envelope pair to bucket.
func WithAuditStore(store ObjectStore, bucket string) Option {
	return func(r *Runtime) {
		r.auditStore = store
		r.auditBucket = bucket
	}
}

// WithAuditRedaction sets the headers masked in audit records. Injected arguments are recognised by argumentPrefix.
func WithAuditRedaction(headers []string, argumentPrefix string) Option {
	return func(r *Runtime) {
		r.redactor = newRedactor(headers, argumentPrefix)
	}
}
