// Package report implements the report command, which runs named
// projections through the query facade.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap"
	"github.com/neurocrista/genemap/internal/cmd/constants"
	"github.com/neurocrista/genemap/internal/cmd/globals"
	"github.com/neurocrista/genemap/internal/cmd/hints"
	"github.com/neurocrista/genemap/internal/cmd/output"
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/query"
)

// AppContext provides the dependencies the report command needs.
type AppContext interface {
	Genemap() (genemap.Genemap, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the report command using the app context.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report [projection]",
		GroupID: "core",
		Short:   "Run a named projection over the reconciled set",
		Long: `Run a named projection and print its report.

Without arguments the command lists the registered projections and the
parameters they accept. Parameters are passed as repeated --param
key=value flags and validated against the projection's declared specs
before it runs. Table output falls back to JSON for nested reports.`,
		Example: `  # List registered projections
  genemap report

  # Research gaps with the default predicate pair
  genemap report gap_report

  # Genes in ClinVar but absent from ClinicalTrials
  genemap report gap_report --param require=clinvar --param absent=clinicaltrials

  # Everything known about one gene
  genemap report gene_detail --param symbol=PAX3 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := app.Genemap()
			if err != nil {
				return err
			}
			if err := gm.Reconcile(cmd.Context()); err != nil {
				return err
			}

			if len(args) == 0 {
				return listProjections(cmd, gm.Definitions())
			}
			raw, _ := cmd.Flags().GetStringArray("param")
			return runProjection(cmd, gm, args[0], raw)
		},
	}

	cmd.Flags().StringArrayP("param", "p", nil,
		"Projection parameter as key=value (repeatable)")

	return cmd
}

// listProjections prints the registered projections with their
// parameter signatures.
func listProjections(cmd *cobra.Command, defs []query.Definition) error {
	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(output.Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		rows := make([][]string, 0, len(defs))
		for _, def := range defs {
			rows = append(rows, []string{def.Name, paramSignature(def.Params), def.Description})
		}
		outputData = output.Data{
			Headers: []string{"NAME", "PARAMS", "DESCRIPTION"},
			Rows:    rows,
		}
	default:
		outputData = projectionRows(defs)
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Found %d projections\n", len(defs))
	}

	return formatter.Format(os.Stdout, outputData)
}

// runProjection executes one projection and prints its report.
func runProjection(cmd *cobra.Command, gm genemap.Genemap, name string, rawParams []string) error {
	params, err := parseParams(rawParams)
	if err != nil {
		return err
	}

	report, err := gm.Query(name, params)
	if err != nil {
		if errors.IsNotFound(err) {
			cmd.SilenceUsage = true
			names := make([]string, 0, len(gm.Definitions()))
			for _, def := range gm.Definitions() {
				names = append(names, def.Name)
			}
			hints.Suggestion(name, names).
				WithCommand("genemap report").
				Fprint(os.Stderr)
		}
		return err
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(output.Format(globalFlags.Output))
	return formatter.Format(os.Stdout, report)
}

// parseParams splits repeated key=value flags into a parameter map.
// Values stay strings; the facade coerces them against the declared
// parameter types.
func parseParams(raw []string) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(raw))
	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, &errors.ValidationError{
				Field:   "param",
				Value:   pair,
				Message: "expected key=value",
			}
		}
		params[key] = value
	}
	return params, nil
}

// paramSignature renders a definition's parameters for the listing,
// marking required ones with a star.
func paramSignature(specs []query.ParamSpec) string {
	if len(specs) == 0 {
		return "-"
	}
	parts := make([]string, len(specs))
	for i, spec := range specs {
		name := spec.Name
		if spec.Required {
			name += "*"
		}
		parts[i] = name
	}
	return strings.Join(parts, ", ")
}

// ProjectionRow is the serializable listing record for one projection.
type ProjectionRow struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Params      []ParamRow `json:"params,omitempty" yaml:"params,omitempty"`
}

// ParamRow describes one declared projection parameter.
type ParamRow struct {
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Required bool     `json:"required" yaml:"required"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum     []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// projectionRows converts definitions to listing records.
func projectionRows(defs []query.Definition) []ProjectionRow {
	rows := make([]ProjectionRow, 0, len(defs))
	for _, def := range defs {
		row := ProjectionRow{
			Name:        def.Name,
			Description: def.Description,
		}
		for _, spec := range def.Params {
			row.Params = append(row.Params, ParamRow{
				Name:     spec.Name,
				Type:     string(spec.Type),
				Required: spec.Required,
				Default:  spec.Default,
				Enum:     spec.Enum,
			})
		}
		rows = append(rows, row)
	}
	return rows
}
