package test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/finance-tracker/backend/pkg/router"
	"github.com/stretchr/testify/require"
)

// requestBody converts a test request body into a reader.
//
// Strings and byte buffers are sent as they are, everything else is
// encoded as JSON.
func requestBody(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return strings.NewReader(b)
	case *bytes.Buffer:
		return b
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err, "request body could not be encoded")
		return bytes.NewReader(encoded)
	}
}

// Request sends a request to a freshly configured router and returns the
// recorded response. The public URL of the API is read from API_URL.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.NoError(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.NoError(t, err, "router could not be configured")

	router.AttachRoutes(r.Group("/"))

	req := httptest.NewRequest(method, reqURL, requestBody(t, body))
	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// BasicAuth returns the Authorization header for the credentials.
func BasicAuth(username, password string) map[string]string {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return map[string]string{"Authorization": "Basic " + credentials}
}

// DecodeResponse decodes the JSON body of a recorded response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	t.Helper()

	err := json.Unmarshal(r.Body.Bytes(), target)
	require.NoError(t, err, "response %q could not be decoded into %T, request ID: %s", r.Body, target, r.Result().Header.Get("x-request-id"))
}

// AssertHTTPStatus fails the test immediately if the response status is
// none of expected.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expected ...int) {
	t.Helper()
	require.Contains(t, expected, r.Code, "unexpected HTTP status, request ID: %s, body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
