package table

import (
	"strconv"
	"strings"

	"github.com/neurocrista/genemap/pkg/snapshot"
)

// SnapshotsToTableData converts stored pipeline records to table format.
// Records render in the order given; callers decide newest-first or oldest-first.
func SnapshotsToTableData(records []snapshot.Record) Data {
	headers := []string{"DATE", "GENES", "GAPS", "FACEBASE", "GAP SYMBOLS"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		symbols := strings.Join(record.GapSymbols, ", ")
		if len(symbols) > 60 {
			symbols = symbols[:57] + "..."
		}
		if symbols == "" {
			symbols = "-"
		}

		rows = append(rows, []string{
			record.Date,
			strconv.Itoa(record.TotalGenes),
			strconv.Itoa(record.CriticalCount),
			strconv.Itoa(len(record.FacebaseSymbols)),
			symbols,
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // DATE
			AlignCenter,  // GENES
			AlignCenter,  // GAPS
			AlignCenter,  // FACEBASE
			AlignDefault, // GAP SYMBOLS
		},
	}
}
