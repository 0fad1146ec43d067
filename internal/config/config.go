// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

const (
	// ModeLambda runs the interceptor under the AWS Lambda runtime.
	ModeLambda = "lambda"
	// ModeService runs the interceptor as a standalone HTTP service.
	ModeService = "service"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Interceptor is a struct that contains the configuration of the request transform.
	Interceptor interceptor
	// Service is a struct that contains the configuration for the service mode.
	Service service
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"lambda"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
	// S3 is a struct that contains the configuration for S3.
	S3 struct {
		Upload struct {
			BucketName string `yaml:"bucketName,omitempty"`
			Enabled    bool   `yaml:"enabled,omitempty"`

			// RedactHeaders are masked in uploaded records, matched case-insensitively.
			RedactHeaders []string `yaml:"redactHeaders,omitempty" default:"[\"Authorization\",\"Proxy-Authorization\",\"Cookie\",\"X-Api-Key\"]"`
		} `yaml:"upload,omitempty"`
	} `yaml:"s3,omitempty"`
}

type interceptor struct {
	// Path is the route served on proxied HTTP events.
	Path string `yaml:"path,omitempty" default:"/interceptor"`
	// ReservedHeaderPrefix marks headers that are forwarded but never injected into the request arguments.
	ReservedHeaderPrefix string `yaml:"reservedHeaderPrefix,omitempty" default:"x-amzn"`
	// ArgumentPrefix is prepended to header names injected into the request arguments.
	ArgumentPrefix string `yaml:"argumentPrefix,omitempty" default:"mcp_header_"`
	// AdditionalHeaders are applied over the incoming headers of the forwarded request.
	AdditionalHeaders map[string]string `yaml:"additionalHeaders,omitempty"`
	// AdditionalHeadersSSMKey names an SSM parameter holding a JSON object of additional headers.
	AdditionalHeadersSSMKey string `yaml:"additionalHeadersSSMKey,omitempty"`
}

type service struct {
	Path    string        `yaml:"path,omitempty" default:"/"`
	Addr    string        `yaml:"addr,omitempty"`
	Port    string        `yaml:"port,omitempty" default:"8080"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Interceptor),
		defaults.Set(&Service),
	)
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global      global      `yaml:"global,omitempty"`
		Interceptor interceptor `yaml:"interceptor,omitempty"`
		Service     service     `yaml:"service,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Interceptor = a.Interceptor
	Service = a.Service

	return nil
}
