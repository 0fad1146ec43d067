package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	t.Helper()
	Global = global{}
	Interceptor = interceptor{}
	Service = service{}
}

func TestSetDefaults(t *testing.T) {
	reset(t)
	require.NoError(t, SetDefaults())

	assert.Equal(t, ModeLambda, Global.Mode)
	assert.Equal(t, "/interceptor", Interceptor.Path)
	assert.Equal(t, "x-amzn", Interceptor.ReservedHeaderPrefix)
	assert.Equal(t, "mcp_header_", Interceptor.ArgumentPrefix)
	assert.Empty(t, Interceptor.AdditionalHeaders)
	assert.Equal(t, []string{"Authorization", "Proxy-Authorization", "Cookie", "X-Api-Key"}, Global.S3.Upload.RedactHeaders)
	assert.Equal(t, "/", Service.Path)
	assert.Equal(t, "8080", Service.Port)
	assert.Equal(t, 5*time.Second, Service.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	testCases := []struct {
		Name        string
		Content     *string
		Dir         bool
		ExpectError bool
		Assert      func(t *testing.T)
	}{
		{
			Name: "missing_file_is_ignored",
			Assert: func(t *testing.T) {
				assert.Equal(t, ModeLambda, Global.Mode)
			},
		},
		{
			Name:        "directory",
			Dir:         true,
			ExpectError: true,
		},
		{
			Name:        "invalid_yaml",
			Content:     ptr("global: [unterminated"),
			ExpectError: true,
		},
		{
			Name: "overrides_and_defaults",
			Content: ptr(`
global:
  mode: service
  logging:
    verbosity: 2
  s3:
    upload:
      enabled: true
      bucketName: audit
      redactHeaders: [X-Api-Key]
interceptor:
  path: /transform
  additionalHeaders:
    X-Tenant: acme
service:
  port: "9090"
  timeout: 10s
`),
			Assert: func(t *testing.T) {
				assert.Equal(t, ModeService, Global.Mode)
				assert.Equal(t, 2, Global.Logging.Verbosity)
				assert.True(t, Global.S3.Upload.Enabled)
				assert.Equal(t, "audit", Global.S3.Upload.BucketName)
				assert.Equal(t, []string{"X-Api-Key"}, Global.S3.Upload.RedactHeaders)
				assert.Equal(t, "/transform", Interceptor.Path)
				assert.Equal(t, map[string]string{"X-Tenant": "acme"}, Interceptor.AdditionalHeaders)
				assert.Equal(t, "x-amzn", Interceptor.ReservedHeaderPrefix)
				assert.Equal(t, "mcp_header_", Interceptor.ArgumentPrefix)
				assert.Equal(t, "9090", Service.Port)
				assert.Equal(t, 10*time.Second, Service.Timeout)
				assert.Equal(t, "/", Service.Path)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			reset(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			switch {
			case tc.Dir:
				require.NoError(t, os.Mkdir(path, 0o750))
			case tc.Content != nil:
				require.NoError(t, os.WriteFile(path, []byte(*tc.Content), 0o600))
			}

			err := LoadFromFile(path)
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, SetDefaults())
			tc.Assert(t)
		})
	}
}

func ptr(s string) *string {
	return &s
}
