//go:build integration
// +build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/datagov-metrics/cloudgov/pkg/cgclient"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	APIKey      string
	APISecret   string
	Org         string
	Space       string
	NATSURL     string
	DatasetID   string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("CLOUDGOV_TEST_API_URL"),
		APIKey:      os.Getenv("CLOUDGOV_TEST_API_KEY"),
		APISecret:   os.Getenv("CLOUDGOV_TEST_API_SECRET"),
		Org:         os.Getenv("CLOUDGOV_TEST_ORG"),
		Space:       os.Getenv("CLOUDGOV_TEST_SPACE"),
		NATSURL:     os.Getenv("CLOUDGOV_TEST_NATS_URL"),
		DatasetID:   os.Getenv("CLOUDGOV_TEST_DATASET_ID"),
	}
}

// SkipIfMissingConfig skips the test when no API credentials are configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIEndpoint == "" || c.APIKey == "" || c.APISecret == "" {
		t.Skip("Skipping integration test: CLOUDGOV_TEST_API_URL, CLOUDGOV_TEST_API_KEY, and CLOUDGOV_TEST_API_SECRET must be set")
	}
}

// SkipIfMissingNATS skips the test when no NATS server is configured.
func (c *TestConfig) SkipIfMissingNATS(t *testing.T) {
	t.Helper()

	if c.NATSURL == "" {
		t.Skip("Skipping integration test: CLOUDGOV_TEST_NATS_URL must be set")
	}
}

// NewTestClient builds a client from the test configuration.
func (c *TestConfig) NewTestClient(t *testing.T) cloudgov.Client {
	t.Helper()

	client, err := cgclient.New(&cloudgov.Config{
		APIEndpoint: c.APIEndpoint,
		APIKey:      c.APIKey,
		APISecret:   c.APISecret,
		Org:         c.Org,
		Space:       c.Space,
	})
	require.NoError(t, err, "Failed to create test client")

	return client
}

// GenerateTestName creates a unique name for test resources.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
