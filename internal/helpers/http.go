package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/isometry/gateway-interceptor/internal/models"
)

type httpResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RespondHTTP writes the response to rw. When err is set, the body is wrapped in a JSON error document.
func RespondHTTP(response models.Response, err error, rw http.ResponseWriter) {
	body := []byte(response.Body)
	if err != nil {
		body, _ = json.Marshal(httpResponse{
			Message: response.Body,
			Error:   err.Error(),
		})
		rw.Header().Set("Content-Type", "application/json")
	}

	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write(body)
}
