package handler

import "fmt"

// MalformedInputError is returned when a required part of the interceptor input is absent.
type MalformedInputError struct {
	Field string
}

func (m *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed interceptor input: missing %s", m.Field)
}
