package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap/internal/cmd/constants"
	"github.com/neurocrista/genemap/internal/cmd/globals"
	"github.com/neurocrista/genemap/internal/cmd/output"
	"github.com/neurocrista/genemap/internal/cmd/table"
	"github.com/neurocrista/genemap/pkg/facts"
)

// NewSourcesCommand creates the list sources subcommand.
func NewSourcesCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "sources",
		Short:   "List fact sources with coverage counts",
		Aliases: []string{"source"},
		Args:    cobra.NoArgs,
		Example: `  genemap list sources           # All sources with coverage
  genemap list sources -o json   # Machine-readable roster`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gm, err := app.Genemap()
			if err != nil {
				return err
			}
			if err := gm.Reconcile(cmd.Context()); err != nil {
				return err
			}
			set := gm.Entities()

			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(output.Format(globalFlags.Output))

			var outputData any
			switch globalFlags.Output {
			case constants.FormatTable, constants.FormatWide, "":
				tableData := table.SourcesToTableData(set)
				outputData = output.Data{
					Headers:         tableData.Headers,
					Rows:            tableData.Rows,
					ColumnAlignment: tableData.ColumnAlignment,
				}
			default:
				outputData = sourceRows(set)
			}

			if !globalFlags.Quiet {
				fmt.Fprintf(os.Stderr, "Found %d sources\n", len(facts.AllSources()))
			}

			return formatter.Format(os.Stdout, outputData)
		},
	}
}
