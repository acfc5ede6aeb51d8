// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"

	"github.com/neurocrista/genemap/internal/cmd/constants"
	"github.com/neurocrista/genemap/internal/cmd/globals"
	"github.com/neurocrista/genemap/internal/cmd/table"
	"github.com/neurocrista/genemap/pkg/snapshot"
)

// FormatSnapshots handles the common pattern of formatting stored pipeline
// records for output.
func FormatSnapshots(records []snapshot.Record, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		tableData := table.SnapshotsToTableData(records)
		outputData = Data{
			Headers:         tableData.Headers,
			Rows:            tableData.Rows,
			ColumnAlignment: tableData.ColumnAlignment,
		}
	default:
		outputData = records
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(os.Stdout, data)
}
