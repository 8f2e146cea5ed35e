package cgclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datagov-metrics/cloudgov/pkg/cgclient"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &cloudgov.Config{
			APIEndpoint: "https://api.example.com",
		}

		client, err := cgclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		t.Parallel()

		_, err := cgclient.New(nil)
		require.ErrorIs(t, err, cloudgov.ErrConfigRequired)
	})

	t.Run("defaults to the production endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := cgclient.New(&cloudgov.Config{})
		require.NoError(t, err)
		assert.Equal(t, "https://api.fr.cloud.gov", client.Status().Endpoint)
	})

	t.Run("leaves the caller's config untouched", func(t *testing.T) {
		t.Parallel()

		config := &cloudgov.Config{APIEndpoint: "api.example.com/"}

		_, err := cgclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/", config.APIEndpoint)
	})
}

func TestNew_EndpointNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{
			name:     "bare host gets https",
			endpoint: "api.fr.cloud.gov",
			expected: "https://api.fr.cloud.gov",
		},
		{
			name:     "trailing slash is trimmed",
			endpoint: "https://api.fr.cloud.gov/",
			expected: "https://api.fr.cloud.gov",
		},
		{
			name:     "http scheme is kept",
			endpoint: "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "https scheme is kept",
			endpoint: "https://api.example.com",
			expected: "https://api.example.com",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, err := cgclient.New(&cloudgov.Config{APIEndpoint: testCase.endpoint})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, client.Status().Endpoint)
		})
	}
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()

	client, err := cgclient.NewWithClientCredentials("https://api.example.com", "key", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.False(t, client.Status().Authenticated)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CLOUDGOV_API_URL", "https://api.example.com")
	t.Setenv("CLOUDGOV_API_KEY", "env-key")
	t.Setenv("CLOUDGOV_API_SECRET", "env-secret")
	t.Setenv("CLOUDGOV_ORG", "gsa-datagov")
	t.Setenv("CLOUDGOV_SPACE", "metrics")

	client, err := cgclient.NewFromEnv()
	require.NoError(t, err)

	status := client.Status()
	assert.Equal(t, "https://api.example.com", status.Endpoint)
	assert.Equal(t, "gsa-datagov", status.Org)
	assert.Equal(t, "metrics", status.Space)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v3/apps":
			response := map[string]interface{}{
				"resources": []map[string]interface{}{
					{"guid": "app-1", "name": "catalog"},
				},
			}
			_ = json.NewEncoder(writer).Encode(response)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := cgclient.New(&cloudgov.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	apps, err := client.Apps().List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps.Resources, 1)
	assert.Equal(t, "catalog", apps.Resources[0].Name())
}
