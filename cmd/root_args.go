package cmd

import (
	"time"

	"github.com/isometry/gateway-interceptor/internal/config"
	"github.com/isometry/gateway-interceptor/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'lambda' and 'service'",
		Short:       helpers.Ptr("m"),
	},
	&config.Interceptor.Path: {
		Name:        "interceptor-path",
		Description: "The route path answered on proxied HTTP events; any other path answers 404",
	},
	&config.Interceptor.ReservedHeaderPrefix: {
		Name:        "reserved-header-prefix",
		Description: "Headers starting with this prefix (case-insensitive) are forwarded but never injected into the request arguments",
	},
	&config.Interceptor.ArgumentPrefix: {
		Name:        "argument-prefix",
		Description: "The prefix prepended to header names injected into the request arguments",
	},
	&config.Interceptor.AdditionalHeadersSSMKey: {
		Name:        "additional-headers-ssm-key",
		Description: "The SSM parameter holding a JSON object of additional headers applied over the incoming headers",
	},
	&config.Global.S3.Upload.BucketName: {
		Name:        "audit-s3-upload-bucket",
		Description: "The S3 bucket to use when uploading audit records",
		Env:         helpers.Ptr("AUDIT_S3_BUCKET"),
	},
	&config.Service.Addr: {
		Name:        "service-host-addr",
		Description: "The address to serve the service on (default all interfaces in dual-stack serviceMode)",
		Short:       helpers.Ptr("H"),
	},
	&config.Service.Port: {
		Name:        "service-host-port",
		Description: "The port to serve the service on",
		Short:       helpers.Ptr("p"),
	},
	&config.Service.Path: {
		Name:        "service-host-path",
		Description: "The path to serve the service on",
		Short:       helpers.Ptr("P"),
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Global.S3.Upload.Enabled: {
		Name:        "audit-s3-upload",
		Description: "Enable S3 upload of interceptor input/output audit records",
		Env:         helpers.Ptr("AUDIT_S3_UPLOAD"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}

var envMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Service.Timeout: {
		Name:        "service-io-timeout",
		Description: "The timeout for I/O operations",
		Short:       helpers.Ptr("t"),
	},
}

var envMapStringMap = map[*map[string]string]boundEnvVar[map[string]string]{
	&config.Interceptor.AdditionalHeaders: {
		Name:        "additional-headers",
		Description: "Headers applied over the incoming headers of the forwarded request (key=value pairs)",
	},
}

var envMapStringSlice = map[*[]string]boundEnvVar[[]string]{
	&config.Global.S3.Upload.RedactHeaders: {
		Name:        "audit-redact-headers",
		Description: "Headers whose values are masked in audit records, also when injected into the request arguments (comma-separated)",
		Env:         helpers.Ptr("AUDIT_REDACT_HEADERS"),
	},
}
