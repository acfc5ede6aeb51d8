package app

import (
	"github.com/spf13/cobra"

	"github.com/neurocrista/genemap/cmd/genemap/cmd/digest"
	"github.com/neurocrista/genemap/cmd/genemap/cmd/list"
	"github.com/neurocrista/genemap/cmd/genemap/cmd/report"
	snapshotcmd "github.com/neurocrista/genemap/cmd/genemap/cmd/snapshot"
	"github.com/neurocrista/genemap/cmd/genemap/cmd/summary"
)

// NewSummaryCommand creates the summary command with app dependencies.
func (a *App) NewSummaryCommand() *cobra.Command {
	return summary.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewReportCommand creates the report command with app dependencies.
func (a *App) NewReportCommand() *cobra.Command {
	return report.NewCommand(a)
}

// NewSnapshotCommand creates the snapshot command with app dependencies.
func (a *App) NewSnapshotCommand() *cobra.Command {
	return snapshotcmd.NewCommand(a)
}

// NewDigestCommand creates the digest command with app dependencies.
func (a *App) NewDigestCommand() *cobra.Command {
	return digest.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("genemap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
