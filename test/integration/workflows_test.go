//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// TestWorkflow_StatusAndList authenticates against the configured endpoint
// and lists the applications the service account can see.
func TestWorkflow_StatusAndList(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Authenticate(ctx), "Failed to authenticate")
	assert.True(t, client.Status().Authenticated)

	apps, err := client.Apps().List(ctx)
	require.NoError(t, err, "Failed to list applications")
	t.Logf("service account sees %d applications", len(apps.Resources))
}

// TestWorkflow_ReleaseDataset releases the dataset named by
// CLOUDGOV_TEST_DATASET_ID. The release endpoint mutates state, so the
// dataset must be one set aside for testing.
func TestWorkflow_ReleaseDataset(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if config.DatasetID == "" {
		t.Skip("Skipping release test: CLOUDGOV_TEST_DATASET_ID must be set")
	}

	client := config.NewTestClient(t)
	ctx := context.Background()

	err := client.Datasets().Release(ctx, config.DatasetID, map[string]interface{}{
		"source": "integration-test",
	})
	require.NoError(t, err, "Failed to release dataset")
}

// TestWorkflow_NATSLedger records a release in a real NATS bucket and reads
// it back.
func TestWorkflow_NATSLedger(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingNATS(t)

	ledger, err := cloudgov.NewNATSLedger(&cloudgov.NATSLedgerConfig{
		URL:    config.NATSURL,
		Bucket: GenerateTestName("release-itest"),
	})
	require.NoError(t, err, "Failed to open NATS ledger")

	defer func() {
		require.NoError(t, ledger.Close())
	}()

	ctx := context.Background()
	datasetID := GenerateTestName("dataset")

	record := &cloudgov.ReleaseRecord{
		DatasetID:  datasetID,
		Status:     "released",
		Org:        config.Org,
		Space:      config.Space,
		ReleasedAt: time.Now().UTC(),
	}
	require.NoError(t, ledger.Record(ctx, record), "Failed to record release")

	found, err := ledger.Get(ctx, datasetID)
	require.NoError(t, err, "Failed to read release back")
	assert.Equal(t, datasetID, found.DatasetID)
	assert.Equal(t, "released", found.Status)

	records, err := ledger.List(ctx)
	require.NoError(t, err, "Failed to list releases")
	assert.NotEmpty(t, records)
}
