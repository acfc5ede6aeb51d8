package globals

import "github.com/spf13/cobra"

// ResourceFlags holds the shared filter flags for gene listing commands.
type ResourceFlags struct {
	Role  string
	Match string
	Limit int
}

// ParseResources extracts resource flags from a command.
// The command must have had AddResourceFlags called on it, otherwise this will panic.
func ParseResources(cmd *cobra.Command) *ResourceFlags {
	return &ResourceFlags{
		Role:  mustGetString(cmd, "role"),
		Match: mustGetString(cmd, "match"),
		Limit: mustGetInt(cmd, "limit"),
	}
}

// AddResourceFlags adds the shared filter flags to a command.
func AddResourceFlags(cmd *cobra.Command) *ResourceFlags {
	flags := &ResourceFlags{}

	cmd.Flags().StringVar(&flags.Role, "role", "",
		"Filter by developmental role (e.g. nc_specifier, signaling, cardiac)")
	cmd.Flags().StringVar(&flags.Match, "match", "",
		"Filter symbols by glob or regex pattern (e.g. 'PAX*', '^SOX\\d+$')")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
