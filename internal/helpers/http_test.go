package helpers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isometry/gateway-interceptor/internal/helpers"
	"github.com/isometry/gateway-interceptor/internal/models"
	"github.com/stretchr/testify/assert"
)

type testCase struct {
	Name     string
	Response models.Response
	Error    error
	Expected expectedResponse
}

type expectedResponse struct {
	StatusCode int
	Body       string
	Header     string
}

func TestRespondHTTP(t *testing.T) {
	testCases := []testCase{
		{
			Name: "with_valid_response_and_no_error",
			Response: models.Response{
				StatusCode: http.StatusOK,
				Body:       `{"interceptorOutputVersion":"1.0"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Body:       `{"interceptorOutputVersion":"1.0"}`,
				Header:     "application/json",
			},
		},
		{
			Name: "with_not_found_response",
			Response: models.Response{
				StatusCode: http.StatusNotFound,
				Body:       `{"message":"not found"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusNotFound,
				Body:       "not found",
				Header:     "application/json",
			},
		},
		{
			Name: "with_valid_response_and_error",
			Response: models.Response{
				StatusCode: http.StatusBadRequest,
				Body:       "Failure",
			},
			Error: errors.New("invalid body"),
			Expected: expectedResponse{
				StatusCode: http.StatusBadRequest,
				Body:       "Failure",
				Header:     "application/json",
			},
		},
		{
			Name:     "with_empty_response_and_no_error",
			Response: models.Response{},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
			},
		},
		{
			Name:     "with_empty_response_and_error",
			Response: models.Response{},
			Error:    errors.New("internal Server Error"),
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Header:     "application/json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rw := httptest.NewRecorder()

			helpers.RespondHTTP(tc.Response, tc.Error, rw)

			assert.Equal(t, tc.Expected.StatusCode, rw.Code)
			assert.Equal(t, tc.Expected.Header, rw.Header().Get("Content-Type"))
			assert.Contains(t, rw.Body.String(), tc.Expected.Body)
			if tc.Error != nil {
				assert.Contains(t, rw.Body.String(), tc.Error.Error())
			} else {
				assert.NotContains(t, rw.Body.String(), `"error"`)
			}
		})
	}
}
