package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseTestClient(t *testing.T, serverURL, metadataPath string) *Client {
	t.Helper()

	client, err := New(&cloudgov.Config{
		APIEndpoint:  serverURL,
		Org:          "gsa-datagov",
		Space:        "metrics",
		MetadataPath: metadataPath,
	})
	require.NoError(t, err)

	return client
}

func TestDatasetsClient_Release(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/datasets/ds-1/release", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ds-1", payload["dataset_id"])
		assert.Equal(t, "released", payload["status"])
		assert.Equal(t, "gsa-datagov", payload["org"])
		assert.Equal(t, "metrics", payload["space"])
		assert.Equal(t, map[string]interface{}{}, payload["metadata"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newReleaseTestClient(t, server.URL, filepath.Join(t.TempDir(), "metadata.json"))

	err := client.Datasets().Release(context.Background(), "ds-1", nil)
	require.NoError(t, err)
}

func TestDatasetsClient_ReleaseWithMetadataFile(t *testing.T) {
	metadataPath := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(metadataPath, []byte(`{"source":"ci","build":7}`), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]interface{}{
			"source": "ci",
			"build":  float64(7),
		}, payload["metadata"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newReleaseTestClient(t, server.URL, metadataPath)

	err := client.Datasets().Release(context.Background(), "ds-1", nil)
	require.NoError(t, err)
}

func TestDatasetsClient_ReleaseExplicitMetadata(t *testing.T) {
	// The file on disk must lose to explicitly passed metadata.
	metadataPath := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(metadataPath, []byte(`{"from_file":true}`), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]interface{}{"pipeline": "nightly"}, payload["metadata"])
	}))
	defer server.Close()

	client := newReleaseTestClient(t, server.URL, metadataPath)

	err := client.Datasets().Release(context.Background(), "ds-1", map[string]interface{}{"pipeline": "nightly"})
	require.NoError(t, err)
}

func TestDatasetsClient_ReleaseStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "ok", statusCode: http.StatusOK, wantErr: false},
		{name: "created", statusCode: http.StatusCreated, wantErr: false},
		{name: "accepted", statusCode: http.StatusAccepted, wantErr: false},
		{name: "no content", statusCode: http.StatusNoContent, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.statusCode)
			}))
			defer server.Close()

			client := newReleaseTestClient(t, server.URL, filepath.Join(t.TempDir(), "metadata.json"))

			err := client.Datasets().Release(context.Background(), "ds-1", map[string]interface{}{})

			if testCase.wantErr {
				require.Error(t, err)

				requestErr := &cloudgov.RequestError{}
				require.ErrorAs(t, err, &requestErr)
				assert.Equal(t, testCase.statusCode, requestErr.StatusCode)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDatasetsClient_ReleaseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errors":[{"title":"ReleaseFailed"}]}`))
	}))
	defer server.Close()

	client := newReleaseTestClient(t, server.URL, filepath.Join(t.TempDir(), "metadata.json"))

	err := client.Datasets().Release(context.Background(), "ds-9", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "releasing dataset ds-9")

	requestErr := &cloudgov.RequestError{}
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, http.StatusInternalServerError, requestErr.StatusCode)
	assert.Contains(t, string(requestErr.Body), "ReleaseFailed")
}

func TestDatasetsClient_ReleaseRequiresDatasetID(t *testing.T) {
	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer server.Close()

	client := newReleaseTestClient(t, server.URL, filepath.Join(t.TempDir(), "metadata.json"))

	err := client.Datasets().Release(context.Background(), "", nil)
	require.ErrorIs(t, err, cloudgov.ErrDatasetIDRequired)
	assert.Equal(t, int64(0), atomic.LoadInt64(&requests))
}
