// Package digest implements the digest command, which renders the
// weekly markdown digest with snapshot diffs.
package digest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap"
	"github.com/neurocrista/genemap/pkg/constants"
	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/snapshot"
)

// AppContext provides the dependencies the digest command needs.
type AppContext interface {
	Genemap() (genemap.Genemap, error)
	Logger() *zerolog.Logger
	StorePath() string
}

// NewCommand creates the digest command using the app context.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "digest",
		GroupID: "management",
		Short:   "Render the weekly markdown digest",
		Long: `Render a markdown digest of pipeline state and recent movement.

The digest reports current source coverage and research gaps, then
diffs the two most recent snapshots to show which gaps opened or
closed and where FaceBase coverage appeared or disappeared. Output
goes to stdout unless --file is given, so it can be piped straight
into an issue comment.`,
		Example: `  # Print the digest
  genemap digest

  # Write to a file for the workflow to pick up
  genemap digest --file output/digest.md

  # Diff against an explicit history store
  genemap digest --db ./history.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			if dbPath == "" {
				dbPath = app.StorePath()
			}
			filePath, _ := cmd.Flags().GetString("file")
			return runDigest(cmd, app, dbPath, filePath)
		},
	}

	cmd.Flags().String("db", "", "Snapshot database path (defaults to the configured store)")
	cmd.Flags().String("file", "", "Write the digest to a file instead of stdout")

	return cmd
}

// runDigest reconciles, loads the two most recent snapshots, and
// renders the digest to stdout or a file.
func runDigest(cmd *cobra.Command, app AppContext, dbPath, filePath string) error {
	gm, err := app.Genemap()
	if err != nil {
		return err
	}
	if err := gm.Reconcile(cmd.Context()); err != nil {
		return err
	}

	store, err := snapshot.Open(dbPath)
	if err != nil {
		return err
	}
	history, err := store.Latest(cmd.Context(), 2)
	if cerr := store.Close(); cerr != nil {
		app.Logger().Warn().Err(cerr).Msg("Failed to close snapshot store")
	}
	if err != nil {
		return err
	}

	if filePath == "" {
		return Render(os.Stdout, gm.Entities(), history, time.Now())
	}

	var buf bytes.Buffer
	if err := Render(&buf, gm.Entities(), history, time.Now()); err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(filePath, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", filePath, err)
	}
	fmt.Fprintf(os.Stderr, "Digest written to %s\n", filePath)
	return nil
}
