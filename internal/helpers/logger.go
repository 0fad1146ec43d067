package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// NewNoopLogger returns a logger that discards every record.
func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SafeJSON returns an attribute holding the JSON encoding of v. Encoding is deferred until a handler
// emits the record, so disabled levels cost nothing.
// Encoding failures (and panics raised while encoding) are reported inline in the attribute value.
func SafeJSON(key string, v any) slog.Attr {
	return slog.Any(key, jsonValue{v: v})
}

type jsonValue struct {
	v any
}

func (j jsonValue) LogValue() (value slog.Value) {
	defer func() {
		if r := recover(); r != nil {
			value = slog.StringValue(fmt.Sprintf("<unserializable: %v>", r))
		}
	}()

	raw, err := json.Marshal(j.v)
	if err != nil {
		return slog.StringValue(fmt.Sprintf("<unserializable: %v>", err))
	}
	return slog.AnyValue(json.RawMessage(raw))
}
