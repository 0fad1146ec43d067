package helpers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/isometry/gateway-interceptor/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickingMarshaler struct{}

func (panickingMarshaler) MarshalJSON() ([]byte, error) {
	panic("boom")
}

type countingMarshaler struct {
	calls *int
}

func (c countingMarshaler) MarshalJSON() ([]byte, error) {
	*c.calls++
	return []byte(`{}`), nil
}

func TestSafeJSON_DisabledLevelSkipsEncoding(t *testing.T) {
	var (
		buf   bytes.Buffer
		calls int
	)
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("skipped", helpers.SafeJSON("value", countingMarshaler{calls: &calls}))
	assert.Zero(t, calls)
	assert.Empty(t, buf.String())

	logger.Info("emitted", helpers.SafeJSON("value", countingMarshaler{calls: &calls}))
	assert.Equal(t, 1, calls)
}

func TestSafeJSON(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    any
		Expected string
	}{
		{
			Name:     "object",
			Input:    map[string]any{"a": 1},
			Expected: `{"a":1}`,
		},
		{
			Name:     "unsupported_value",
			Input:    map[string]any{"a": math.Inf(1)},
			Expected: `"<unserializable: json: unsupported value: +Inf>"`,
		},
		{
			Name:     "panicking_marshaler",
			Input:    panickingMarshaler{},
			Expected: `"<unserializable: boom>"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			assert.NotPanics(t, func() {
				logger.Info("test", helpers.SafeJSON("value", tc.Input))
			})

			var record map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.JSONEq(t, tc.Expected, string(record["value"]))
		})
	}
}
