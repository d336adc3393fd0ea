// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ccs/cmd/ccs/handlers"
)

// Root returns the root command for the ccs CLI.
//
// The account is read from the config file, then CLOUDSIGMA_REGION,
// CLOUDSIGMA_USERNAME and CLOUDSIGMA_PASSWORD, then the global flags. The
// password is never accepted as a flag.
func Root() *cobra.Command {
	opts := &handlers.GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "ccs",
		Short:         "Manage CloudSigma servers, drives and networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.Out = cmd.OutOrStdout()
			opts.Err = cmd.ErrOrStderr()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Region, "region", "", "CloudSigma region, e.g. zrh (env: CLOUDSIGMA_REGION)")
	flags.StringVar(&opts.Username, "username", "", "Account email (env: CLOUDSIGMA_USERNAME)")
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default: ~/.config/ccs/config.yaml)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log API requests and provisioning steps to stderr")
	flags.StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write API request metrics to this file in Prometheus text format")

	// Resource commands
	cmd.AddCommand(List(opts))
	cmd.AddCommand(Find(opts))
	cmd.AddCommand(Server(opts))
	cmd.AddCommand(Drive(opts))

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
