package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datagov-metrics/cloudgov/internal/constants"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show connection status",
		Long:  "Show the configured endpoint, org, space, and session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if check {
				ctx := context.Background()
				if err := client.Authenticate(ctx); err != nil {
					return fmt.Errorf("credential check failed: %w", err)
				}
			}

			status := client.Status()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return renderJSON(status)
			case constants.FormatYAML:
				return renderYAML(status)
			default:
				apiKey := constants.NotAvailable
				if viper.GetString("api-key") != "" {
					apiKey = constants.MaskedSecret
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Endpoint", status.Endpoint)
				_ = table.Append("Org", valueOrNA(status.Org))
				_ = table.Append("Space", valueOrNA(status.Space))
				_ = table.Append("API Key", apiKey)
				_ = table.Append("Authenticated", fmt.Sprintf("%t", status.Authenticated))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the credentials against the token endpoint")

	return cmd
}

// valueOrNA substitutes N/A for empty values in table output.
func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
