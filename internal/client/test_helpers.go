package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	internalhttp "github.com/datagov-metrics/cloudgov/internal/http"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		config:     &cloudgov.Config{APIEndpoint: baseURL},
		logger:     &noopLogger{},
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// NewTokenServer starts a test server whose token endpoint issues the
// given access token and forwards every other request to handler.
func NewTokenServer(t *testing.T, accessToken string, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(constants.TokenPath, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"access_token": accessToken,
			"token_type":   "bearer",
			"expires_in":   3599,
		})
	})

	if handler != nil {
		mux.HandleFunc("/", handler)
	}

	return httptest.NewServer(mux)
}

// AssertBearerToken checks that the request carries the expected bearer token.
func AssertBearerToken(t *testing.T, request *http.Request, accessToken string) {
	t.Helper()
	assert.Equal(t, "Bearer "+accessToken, request.Header.Get("Authorization"))
}
