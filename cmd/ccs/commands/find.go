package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ccs/cmd/ccs/handlers"
)

// Find returns the command for looking up one resource by name or uuid.
func Find(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.FindOptions

	cmd := &cobra.Command{
		Use:   "find <kind> <name-or-uuid>",
		Short: "Show the resource with the given name or uuid",
		Long: `Show the first resource of the given kind whose name or uuid equals
the query exactly. Kinds: server, drive, vlan, ip, subscription.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Kind = args[0]
			opts.Query = args[1]
			return handlers.Find(cmd.Context(), global, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Human, "human", false, "Print a human-readable line")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: json or yaml")

	return cmd
}
