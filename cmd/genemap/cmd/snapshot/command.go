// Package snapshot implements the snapshot command, which captures and
// lists daily pipeline records.
package snapshot

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap"
	"github.com/neurocrista/genemap/internal/cmd/globals"
	"github.com/neurocrista/genemap/internal/cmd/output"
	"github.com/neurocrista/genemap/pkg/snapshot"
)

// AppContext provides the dependencies the snapshot command needs.
type AppContext interface {
	Genemap() (genemap.Genemap, error)
	Logger() *zerolog.Logger
	StorePath() string
}

// NewCommand creates the snapshot command using the app context.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		GroupID: "management",
		Short:   "Capture today's pipeline record",
		Long: `Capture a snapshot of the reconciled set into the history store.

A snapshot records the gene total, the critical funding gaps, and the
genes with FaceBase coverage as of today. Capturing the same date twice
replaces that day's record, so scheduled runs stay idempotent. Use
--list to print the stored history instead of capturing.`,
		Example: `  # Capture today's record into the configured store
  genemap snapshot

  # Capture into an explicit database
  genemap snapshot --db ./history.db

  # Show stored history, oldest first
  genemap snapshot --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			if dbPath == "" {
				dbPath = app.StorePath()
			}

			if list, _ := cmd.Flags().GetBool("list"); list {
				return listSnapshots(cmd, dbPath)
			}
			return captureSnapshot(cmd, app, dbPath)
		},
	}

	cmd.Flags().String("db", "", "Snapshot database path (defaults to the configured store)")
	cmd.Flags().Bool("list", false, "List stored records instead of capturing")

	return cmd
}

// captureSnapshot reconciles, summarizes the set as of today, and
// upserts the record.
func captureSnapshot(cmd *cobra.Command, app AppContext, dbPath string) error {
	gm, err := app.Genemap()
	if err != nil {
		return err
	}
	if err := gm.Reconcile(cmd.Context()); err != nil {
		return err
	}

	record := snapshot.Capture(gm.Entities(), time.Now())

	store, err := snapshot.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			app.Logger().Warn().Err(cerr).Msg("Failed to close snapshot store")
		}
	}()

	if err := store.Save(cmd.Context(), record); err != nil {
		return err
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Captured %s: %d genes, %d gaps, %d with FaceBase data\n",
			record.Date, record.TotalGenes, record.CriticalCount, len(record.FacebaseSymbols))
	}
	return nil
}

// listSnapshots prints the stored history in date-ascending order.
func listSnapshots(cmd *cobra.Command, dbPath string) error {
	store, err := snapshot.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Found %d snapshots\n", len(records))
	}
	return output.FormatSnapshots(records, globalFlags)
}
