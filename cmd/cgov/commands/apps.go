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

// NewAppsCommand creates the apps command group
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"app"},
		Short:   "Manage applications",
		Long:    "View the applications visible to the configured service account",
	}

	cmd.AddCommand(newAppsListCommand())

	return cmd
}

func newAppsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List applications",
		Long:    "List every application the service account can see",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			apps, err := client.Apps().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return renderJSON(apps.Resources)
			case constants.FormatYAML:
				return renderYAML(apps.Resources)
			default:
				if len(apps.Resources) == 0 {
					fmt.Println("No applications found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "GUID")

				for _, app := range apps.Resources {
					_ = table.Append(app.Name(), app.ID())
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
