package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var (
		ledgerType string
		natsURL    string
		natsBucket string
	)

	cmd := &cobra.Command{
		Use:   "history [DATASET_ID]",
		Short: "Show recorded releases",
		Long: `Show the releases recorded in the configured ledger, or the release
record for a single dataset when DATASET_ID is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cloudgov.LedgerType(ledgerType) == cloudgov.LedgerTypeNone {
				return constants.ErrLedgerNotConfigured
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

			ctx := context.Background()

			if len(args) == 1 {
				record, err := ledger.Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to look up release of %s: %w", args[0], err)
				}

				return outputReleaseRecord(record)
			}

			records, err := ledger.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list releases: %w", err)
			}

			return outputReleaseRecords(records)
		},
	}

	cmd.Flags().StringVar(&ledgerType, "ledger", string(cloudgov.LedgerTypeNone), "release ledger (none, memory, nats)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL for the nats ledger")
	cmd.Flags().StringVar(&natsBucket, "nats-bucket", constants.DefaultLedgerBucket, "key-value bucket for the nats ledger")

	return cmd
}

func outputReleaseRecord(record *cloudgov.ReleaseRecord) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return renderJSON(record)
	case constants.FormatYAML:
		return renderYAML(record)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("Dataset ID", record.DatasetID)
		_ = table.Append("Status", record.Status)
		_ = table.Append("Org", valueOrNA(record.Org))
		_ = table.Append("Space", valueOrNA(record.Space))
		_ = table.Append("Released At", record.ReleasedAt.Format("2006-01-02 15:04:05"))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputReleaseRecords(records []*cloudgov.ReleaseRecord) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return renderJSON(records)
	case constants.FormatYAML:
		return renderYAML(records)
	default:
		if len(records) == 0 {
			fmt.Println("No releases recorded")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Dataset ID", "Status", "Org", "Space", "Released At")

		for _, record := range records {
			_ = table.Append(record.DatasetID, record.Status, valueOrNA(record.Org),
				valueOrNA(record.Space), record.ReleasedAt.Format("2006-01-02 15:04:05"))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
