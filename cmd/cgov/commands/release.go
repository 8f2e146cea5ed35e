package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// NewReleaseCommand creates the release command
func NewReleaseCommand() *cobra.Command {
	var (
		datasetID    string
		releaseAll   bool
		metadataFile string
		concurrency  int
		ledgerType   string
		natsURL      string
		natsBucket   string
	)

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Mark datasets as released",
		Long: `Mark a dataset as released, or every dataset the service account can
see when --all is set. Failed releases do not stop the rest of the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if datasetID != "" && releaseAll {
				return constants.ErrDatasetIDAndAllExclusive
			}

			if datasetID == "" && !releaseAll {
				return constants.ErrDatasetIDOrAllRequired
			}

			metadata, err := loadMetadataFile(metadataFile)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			status := client.Status()
			fmt.Printf("Connecting to %s (org %s, space %s)\n",
				status.Endpoint, valueOrNA(status.Org), valueOrNA(status.Space))

			if err := client.Authenticate(ctx); err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			datasetIDs, err := resolveDatasetIDs(ctx, client, datasetID, releaseAll)
			if err != nil {
				return err
			}

			ledger, err := openLedger(ledgerType, natsURL, natsBucket)
			if err != nil {
				return err
			}

			defer func() {
				if err := ledger.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: closing release ledger: %v\n", err)
				}
			}()

			fmt.Printf("Releasing %d dataset(s)\n", len(datasetIDs))

			results, err := releaseDatasets(ctx, client, datasetIDs, metadata, concurrency)
			if err != nil {
				return fmt.Errorf("failed to run releases: %w", err)
			}

			recordReleases(ctx, ledger, status, results)

			_, failed := cloudgov.CountResults(results)

			if releaseAll {
				printReleaseSummary(results)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", constants.ErrReleasesFailed, failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetID, "dataset-id", "", "dataset to release")
	cmd.Flags().BoolVar(&releaseAll, "all", false, "release every dataset the service account can see")
	cmd.Flags().StringVar(&metadataFile, "metadata-file", "", "JSON file with release metadata")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "number of releases to run at once")
	cmd.Flags().StringVar(&ledgerType, "ledger", string(cloudgov.LedgerTypeNone), "release ledger (none, memory, nats)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL for the nats ledger")
	cmd.Flags().StringVar(&natsBucket, "nats-bucket", constants.DefaultLedgerBucket, "key-value bucket for the nats ledger")

	return cmd
}

// loadMetadataFile reads release metadata from an explicitly named file.
// Unlike the automatic metadata.json lookup, a named file must parse.
func loadMetadataFile(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &cloudgov.LocalResourceError{Path: path, Err: err}
	}

	var metadata map[string]interface{}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, &cloudgov.LocalResourceError{Path: path, Err: err}
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return metadata, nil
}

// resolveDatasetIDs expands --all into the IDs of every visible app.
func resolveDatasetIDs(ctx context.Context, client cloudgov.Client, datasetID string, releaseAll bool) ([]string, error) {
	if !releaseAll {
		return []string{datasetID}, nil
	}

	apps, err := client.Apps().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}

	if len(apps.Resources) == 0 {
		return nil, constants.ErrNoDatasetsFound
	}

	ids := make([]string, 0, len(apps.Resources))
	for _, resource := range apps.Resources {
		ids = append(ids, resource.ID())
	}

	return ids, nil
}

// releaseDatasets runs the batch, printing one line per dataset as results
// come in.
func releaseDatasets(ctx context.Context, client cloudgov.Client, datasetIDs []string, metadata map[string]interface{}, concurrency int) ([]cloudgov.ReleaseResult, error) {
	operations := make([]cloudgov.ReleaseOperation, 0, len(datasetIDs))

	for _, id := range datasetIDs {
		operations = append(operations, cloudgov.ReleaseOperation{
			DatasetID: id,
			Metadata:  metadata,
			Callback: func(result *cloudgov.ReleaseResult) {
				if result.Success {
					fmt.Printf("%s Released %s\n", constants.CheckMarkSymbol, result.DatasetID)
				} else {
					fmt.Printf("%s Failed %s: %v\n", constants.CrossMarkSymbol, result.DatasetID, result.Error)
				}
			},
		})
	}

	releaser := cloudgov.NewBatchReleaser(client, concurrency)

	return releaser.Execute(ctx, operations)
}

// printReleaseSummary prints the closing count block for batch releases.
func printReleaseSummary(results []cloudgov.ReleaseResult) {
	succeeded, failed := cloudgov.CountResults(results)

	fmt.Println()
	fmt.Println("=== Release Summary ===")
	fmt.Printf("Total datasets: %d\n", len(results))
	fmt.Printf("Successful: %d\n", succeeded)
	fmt.Printf("Failed: %d\n", failed)
}

// recordReleases writes successful releases to the ledger. Ledger failures
// warn instead of failing a release that already happened.
func recordReleases(ctx context.Context, ledger cloudgov.ReleaseLedger, status cloudgov.ConnectionStatus, results []cloudgov.ReleaseResult) {
	for _, result := range results {
		if !result.Success {
			continue
		}

		record := &cloudgov.ReleaseRecord{
			DatasetID:  result.DatasetID,
			Status:     constants.ReleaseStatusReleased,
			Org:        status.Org,
			Space:      status.Space,
			ReleasedAt: time.Now().UTC(),
		}

		if err := ledger.Record(ctx, record); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: recording release of %s: %v\n", result.DatasetID, err)
		}
	}
}
