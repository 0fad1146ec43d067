// Package runtime dispatches Lambda invocations and HTTP requests to the interceptor handler.
package runtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/isometry/gateway-interceptor/internal/handler"
	"github.com/isometry/gateway-interceptor/internal/helpers"
	"github.com/isometry/gateway-interceptor/internal/models"
	"github.com/pkg/errors"
)

// DefaultPath is the route served on proxied HTTP events when none is configured.
const DefaultPath = "/interceptor"

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// ObjectStore persists audit records.
type ObjectStore interface {
	PutS3Object(ctx context.Context, id string, bucket string, body []byte) error
}

// Runtime wraps the interceptor handler for both invocation styles: direct interceptor events and
// proxied HTTP requests.
type Runtime struct {
	*handler.Handler
	logger      *slog.Logger
	path        string
	auditStore  ObjectStore
	auditBucket string
	redactor    redactor
}

// NewRuntime creates a new runtime instance
func NewRuntime(h *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{
		Handler:  h,
		path:     DefaultPath,
		redactor: newRedactor(DefaultRedactedHeaders, handler.DefaultArgumentPrefix),
	}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// Lambda is the AWS Lambda entrypoint. Interceptor events are answered with the output envelope;
// API Gateway proxy events (payload v1 and v2) are routed by path and answered with a proxy response.
func (r *Runtime) Lambda(ctx context.Context, event json.RawMessage) (any, error) {
	kind, err := classify(event)
	logger := r.logger.With(slog.String("event", kind.String()))
	if err != nil {
		logger.Warn("rejecting invocation", slog.Any("error", err))
		return nil, err
	}
	logger.Info("received invocation")

	switch kind {
	case eventInterceptor:
		var input models.InterceptorInput
		if err = json.Unmarshal(event, &input); err != nil {
			return nil, errors.Wrap(err, "failed to decode interceptor event")
		}
		return r.process(ctx, input)

	case eventHTTPv1:
		var req events.APIGatewayProxyRequest
		if err = json.Unmarshal(event, &req); err != nil {
			return nil, errors.Wrap(err, "failed to decode API Gateway proxy event")
		}
		resp := r.HandleRequest(ctx, models.Request{
			Path:            req.Path,
			Method:          req.HTTPMethod,
			Body:            req.Body,
			Headers:         req.Headers,
			IsBase64Encoded: req.IsBase64Encoded,
		})
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil

	case eventHTTPv2:
		var req events.APIGatewayV2HTTPRequest
		if err = json.Unmarshal(event, &req); err != nil {
			return nil, errors.Wrap(err, "failed to decode API Gateway V2 HTTP event")
		}
		resp := r.HandleRequest(ctx, models.Request{
			Path:            req.RawPath,
			Method:          req.RequestContext.HTTP.Method,
			Body:            req.Body,
			Headers:         req.Headers,
			IsBase64Encoded: req.IsBase64Encoded,
		})
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	}

	return nil, &UnknownEventError{}
}

// HandleRequest serves a proxied HTTP request. The configured path accepts a JSON interceptor input
// and answers 200 with the JSON output envelope; every other path answers 404. Undecodable bodies answer 400.
func (r *Runtime) HandleRequest(ctx context.Context, req models.Request) models.Response {
	logger := r.logger.With(slog.String("method", req.Method), slog.String("path", req.Path))

	if helpers.NormalisePath(req.Path) != helpers.NormalisePath(r.path) {
		logger.Info("rejecting request on unknown path")
		return jsonResponse(http.StatusNotFound, fmt.Sprintf("no route for path %s", req.Path))
	}

	body, err := decodeBody(req.Body, req.IsBase64Encoded)
	if err != nil {
		logger.Warn("failed to decode request body", slog.Any("error", err))
		return jsonResponse(http.StatusBadRequest, "request body is not valid base64")
	}

	var input models.InterceptorInput
	if err = json.Unmarshal([]byte(body), &input); err != nil {
		logger.Warn("failed to parse request body", slog.Any("error", err))
		return jsonResponse(http.StatusBadRequest, "request body is not a valid interceptor input")
	}

	output, err := r.process(ctx, input)
	if err != nil {
		logger.Warn("failed to process interceptor input", slog.Any("error", err))
		return jsonResponse(http.StatusBadRequest, err.Error())
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to serialize interceptor output", slog.Any("error", err))
		return jsonResponse(http.StatusInternalServerError, "failed to serialize interceptor output")
	}
	return models.Response{
		StatusCode: http.StatusOK,
		Headers:    jsonHeaders(),
		Body:       string(encoded),
	}
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path))

	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, err, resp)
		return
	}

	headers := make(map[string]string, len(req.Header))
	for k, v := range req.Header {
		// XXX: only the first value of repeated headers is kept
		headers[k] = v[0]
	}

	response := r.HandleRequest(req.Context(), models.Request{
		Path:    req.URL.Path,
		Method:  req.Method,
		Body:    string(body),
		Headers: headers,
	})
	helpers.RespondHTTP(response, nil, resp)
}

func (r *Runtime) process(ctx context.Context, input models.InterceptorInput) (models.InterceptorOutput, error) {
	output, err := r.Handler.Process(input)
	if err != nil {
		return output, err
	}

	// Extensions
	r.audit(ctx, input, output)
	return output, nil
}

// audit uploads the input/output pair to the audit store with credential-bearing headers masked.
// Failures are logged and never surfaced.
func (r *Runtime) audit(ctx context.Context, input models.InterceptorInput, output models.InterceptorOutput) {
	if r.auditStore == nil || r.auditBucket == "" {
		return
	}

	record, err := json.Marshal(struct {
		Input  models.InterceptorInput  `json:"input"`
		Output models.InterceptorOutput `json:"output"`
	}{r.redactor.input(input), r.redactor.output(output)})
	if err != nil {
		r.logger.Warn("failed to serialize audit record", slog.Any("error", err))
		return
	}

	id := "local"
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		id = lc.AwsRequestID
	}
	if err = r.auditStore.PutS3Object(ctx, id, r.auditBucket, record); err != nil {
		r.logger.Warn("failed to store audit record", slog.Any("error", err))
	}
}

func decodeBody(body string, isBase64 bool) (string, error) {
	if !isBase64 {
		return body, nil
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode base64 request body")
	}
	return string(raw), nil
}

func jsonResponse(statusCode int, message string) models.Response {
	body, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{message})
	return models.Response{
		StatusCode: statusCode,
		Headers:    jsonHeaders(),
		Body:       string(body),
	}
}
