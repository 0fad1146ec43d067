package cmd

import (
	"maps"

	"github.com/isometry/gateway-interceptor/internal/config"
	awsctl "github.com/isometry/gateway-interceptor/internal/controllers/aws"
	"github.com/isometry/gateway-interceptor/internal/handler"
	"github.com/isometry/gateway-interceptor/internal/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var newAWSController = defaultAWSController

func defaultAWSController(cmd *cobra.Command) (*awsctl.Controller, error) {
	return awsctl.NewController(
		awsctl.WithLogger(logger.With("component", "aws-controller")),
		awsctl.WithContext(cmd.Context()))
}

func setup(cmd *cobra.Command) (*runtime.Runtime, error) {
	additionalHeaders := maps.Clone(config.Interceptor.AdditionalHeaders)
	upload := config.Global.S3.Upload

	var awsController *awsctl.Controller
	if config.Interceptor.AdditionalHeadersSSMKey != "" || (upload.Enabled && upload.BucketName != "") {
		logger.Debug("creating AWS controller...")
		ctl, err := newAWSController(cmd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create AWS controller")
		}
		awsController = ctl
	}

	if key := config.Interceptor.AdditionalHeadersSSMKey; key != "" {
		logger.Debug("fetching additional headers...", "key", key)
		headers, err := awsController.GetHeaders(cmd.Context(), key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch additional headers")
		}
		if additionalHeaders == nil {
			additionalHeaders = make(map[string]string, len(headers))
		}
		maps.Copy(additionalHeaders, headers)
	}

	logger.Debug("creating interceptor handler...")
	hdl := handler.NewInterceptorHandler(
		handler.WithLogger(logger.With("component", "interceptor")),
		handler.WithAdditionalHeaders(additionalHeaders),
		handler.WithReservedHeaderPrefix(config.Interceptor.ReservedHeaderPrefix),
		handler.WithArgumentPrefix(config.Interceptor.ArgumentPrefix))

	opts := []runtime.Option{
		runtime.WithLogger(logger.With("component", "runtime")),
		runtime.WithPath(config.Interceptor.Path),
	}
	if upload.Enabled && upload.BucketName != "" {
		logger.Debug("audit upload enabled", "bucket", upload.BucketName)
		opts = append(opts,
			runtime.WithAuditStore(awsController, upload.BucketName),
			runtime.WithAuditRedaction(upload.RedactHeaders, config.Interceptor.ArgumentPrefix))
	}

	logger.Debug("creating runtime...")
	return runtime.NewRuntime(hdl, opts...), nil
}
