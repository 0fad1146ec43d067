package runtime

import "fmt"

// UnknownEventError is returned when an invocation payload matches none of the supported event shapes.
type UnknownEventError struct {
	Cause error
}

func (m *UnknownEventError) Error() string {
	if m.Cause != nil {
		return fmt.Sprintf("unknown event: %v", m.Cause)
	}
	return "unknown event: no interceptor or HTTP proxy discriminant found"
}

func (m *UnknownEventError) Unwrap() error {
	return m.Cause
}
