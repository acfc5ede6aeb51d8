package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap"
)

// AppContext defines the interface that list commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Genemap() (genemap.Genemap, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List genes and sources from the reconciled set",
		Long: `List displays resources from the reconciled gene-fact set.

Available subcommands:
  genes    - registry genes with their per-source coverage matrix
  sources  - fact sources with labels, URLs, and coverage counts`,
		Example: `  genemap list genes               # Coverage matrix for every gene
  genemap list genes SOX10         # Show one gene in detail
  genemap list genes --role enteric  # Only enteric nervous system genes
  genemap list sources             # List all fact sources`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewGenesCommand(app))
	cmd.AddCommand(NewSourcesCommand(app))

	return cmd
}
