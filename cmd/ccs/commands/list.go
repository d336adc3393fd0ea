package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ccs/cmd/ccs/handlers"
	"github.com/imamik/ccs/internal/resource"
)

// listKinds returns the completions for the list argument.
func listKinds() []string {
	kinds := []string{handlers.KindAll}
	for _, k := range resource.Kinds() {
		kinds = append(kinds, k.Plural())
	}
	return kinds
}

// List returns the command for listing resources.
func List(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ListOptions

	cmd := &cobra.Command{
		Use:   "list [all|servers|drives|vlans|ips|subscriptions|capabilities]",
		Short: "List resources",
		Long: `List resources of one kind, or servers, drives, vlans and ips for "all".

Minimal records are printed as JSON by default. --detail fetches full
records, --uuid prints one uuid per line and --human prints one
descriptive line per resource with referenced names resolved.`,
		ValidArgs: listKinds(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Kind = handlers.KindAll
			if len(args) == 1 {
				opts.Kind = args[0]
			}
			return handlers.List(cmd.Context(), global, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Detail, "detail", false, "List full records")
	cmd.Flags().BoolVar(&opts.UUIDOnly, "uuid", false, "Print only uuids")
	cmd.Flags().BoolVar(&opts.Human, "human", false, "Print human-readable lines")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: json, yaml or table")
	cmd.MarkFlagsMutuallyExclusive("uuid", "human")

	return cmd
}
