// Package list provides commands for listing genemap resources.
package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap/internal/cmd/constants"
	"github.com/neurocrista/genemap/internal/cmd/globals"
	"github.com/neurocrista/genemap/internal/cmd/hints"
	"github.com/neurocrista/genemap/internal/cmd/output"
	"github.com/neurocrista/genemap/internal/cmd/table"
	"github.com/neurocrista/genemap/internal/matcher"
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

// NewGenesCommand creates the list genes subcommand.
func NewGenesCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genes [symbol]",
		Short:   "List genes with their per-source coverage matrix",
		Aliases: []string{"gene"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  genemap list genes                 # Coverage matrix for every gene
  genemap list genes PAX3            # Show specific gene details
  genemap list genes --role cardiac  # Cardiac neural crest genes only
  genemap list genes --match 'PAX*'  # Symbols matching a glob or regex
  genemap list genes -o json         # Machine-readable rows`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := app.Genemap()
			if err != nil {
				return err
			}
			if err := gm.Reconcile(cmd.Context()); err != nil {
				return err
			}

			// Single gene detail view
			if len(args) == 1 {
				return showGeneDetails(cmd, gm.Registry(), gm.Entities(), args[0])
			}

			// List view with filters
			resourceFlags := globals.ParseResources(cmd)
			return listGenes(cmd, gm.Registry(), gm.Entities(), resourceFlags)
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}

// listGenes renders the coverage matrix, optionally filtered by role
// and symbol pattern.
func listGenes(cmd *cobra.Command, registry *genes.Registry, set *merge.Set, flags *globals.ResourceFlags) error {
	entities := set.Entities()

	if flags.Match != "" {
		m, err := matcher.New(matcher.Auto, flags.Match, &matcher.Options{CaseInsensitive: true})
		if err != nil {
			return &errors.ValidationError{
				Field:   "match",
				Value:   flags.Match,
				Message: err.Error(),
			}
		}
		filtered := make([]*merge.Entity, 0, len(entities))
		for _, entity := range entities {
			if m.Match(string(entity.Symbol())) {
				filtered = append(filtered, entity)
			}
		}
		entities = filtered
	}

	if flags.Role != "" {
		r := genes.Role(flags.Role)
		if !r.IsValid() {
			return &errors.ValidationError{
				Field:   "role",
				Value:   flags.Role,
				Message: "unknown developmental role",
			}
		}
		filtered := make([]*merge.Entity, 0, len(entities))
		for _, entity := range entities {
			if gene, ok := registry.Get(entity.Symbol()); ok && gene.Role == r {
				filtered = append(filtered, entity)
			}
		}
		entities = filtered
	}

	if flags.Limit > 0 && len(entities) > flags.Limit {
		entities = entities[:flags.Limit]
	}

	// Get global flags and format output
	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(output.Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		tableData := table.GenesToTableData(entities, registry, globalFlags.Output == constants.FormatWide)
		// Convert to output.Data for formatter compatibility
		outputData = output.Data{
			Headers:         tableData.Headers,
			Rows:            tableData.Rows,
			ColumnAlignment: tableData.ColumnAlignment,
		}
	default:
		outputData = geneRows(entities, registry)
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Found %d genes\n", len(entities))
	}

	return formatter.Format(os.Stdout, outputData)
}

// showGeneDetails shows detailed information about a specific gene.
func showGeneDetails(cmd *cobra.Command, registry *genes.Registry, set *merge.Set, symbol string) error {
	gene, ok := registry.Get(genes.Symbol(symbol))
	if !ok {
		// Suppress usage display for not found errors
		cmd.SilenceUsage = true
		names := make([]string, 0, registry.Len())
		for _, s := range registry.Symbols() {
			names = append(names, string(s))
		}
		hints.Suggestion(symbol, names).
			WithCommand("genemap list genes").
			Fprint(os.Stderr)
		return &errors.NotFoundError{
			Resource: "gene",
			ID:       symbol,
		}
	}

	entity, ok := set.Get(gene.Symbol)
	if !ok {
		cmd.SilenceUsage = true
		return &errors.NotFoundError{
			Resource: "gene",
			ID:       symbol,
		}
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(output.Format(globalFlags.Output))

	// For table output, show detailed view
	if globalFlags.Output == constants.FormatTable || globalFlags.Output == "" {
		fmt.Printf("Gene: %s\n\n", gene.Symbol)
		tableData := table.GeneToTableData(gene, entity)
		return formatter.Format(os.Stdout, output.Data{
			Headers: tableData.Headers,
			Rows:    tableData.Rows,
		})
	}

	// For structured output, return the full detail record
	return formatter.Format(os.Stdout, geneDetail(gene, entity))
}
