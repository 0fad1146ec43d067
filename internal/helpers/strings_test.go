package helpers_test

import (
	"testing"
	"unicode/utf8"

	"github.com/isometry/gateway-interceptor/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	value := "v"
	testCases := []struct {
		Name     string
		Input    *string
		Expected string
	}{
		{
			Name:     "nil_string",
			Input:    nil,
			Expected: "",
		},
		{
			Name:     "empty_string",
			Input:    new(string),
			Expected: "",
		},
		{
			Name:     "value",
			Input:    &value,
			Expected: "v",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, helpers.String(tc.Input))
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Length   int
		Expected string
	}{
		{
			Name:     "shorter_than_limit",
			Input:    "abc",
			Length:   10,
			Expected: "abc",
		},
		{
			Name:     "exact_limit",
			Input:    "abcdef",
			Length:   6,
			Expected: "abcdef",
		},
		{
			Name:     "longer_than_limit",
			Input:    "abcdefghij",
			Length:   6,
			Expected: "abc...",
		},
		{
			Name:     "multibyte_rune_at_cut",
			Input:    "ab€def",
			Length:   6,
			Expected: "ab...",
		},
		{
			Name:     "limit_without_room_for_ellipsis",
			Input:    "abcdef",
			Length:   2,
			Expected: "ab",
		},
		{
			Name:     "small_limit_on_multibyte_rune",
			Input:    "€uro",
			Length:   2,
			Expected: "",
		},
		{
			Name:     "zero_limit",
			Input:    "abc",
			Length:   0,
			Expected: "",
		},
		{
			Name:     "negative_limit",
			Input:    "abc",
			Length:   -1,
			Expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			out := helpers.Truncate(tc.Input, tc.Length)
			assert.Equal(t, tc.Expected, out)
			assert.True(t, utf8.ValidString(out))
		})
	}
}

func TestNormalisePath(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected string
	}{
		{Name: "empty", Input: "", Expected: "/"},
		{Name: "root", Input: "/", Expected: "/"},
		{Name: "plain", Input: "/interceptor", Expected: "/interceptor"},
		{Name: "trailing_slash", Input: "/interceptor/", Expected: "/interceptor"},
		{Name: "many_trailing_slashes", Input: "/interceptor//", Expected: "/interceptor"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, helpers.NormalisePath(tc.Input))
		})
	}
}
