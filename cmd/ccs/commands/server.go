package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/ccs/cmd/ccs/handlers"
	"github.com/imamik/ccs/internal/provisioning"
)

// Server returns the parent command for server management.
func Server(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage servers",
	}

	cmd.AddCommand(ServerCreate(global))
	cmd.AddCommand(serverToggle(global, "console", "Open or close the serial console of a server",
		handlers.OpenConsole, handlers.CloseConsole))
	cmd.AddCommand(serverToggle(global, "display", "Open or close the VNC display of a server",
		handlers.OpenDisplay, handlers.CloseDisplay))

	return cmd
}

// ServerCreate returns the command for creating a server.
//
// The server gets one DHCP network interface. A primary disk is either an
// existing unmounted drive (--attach-drive) or a new "<name>-system" SSD
// drive (--create-drive).
func ServerCreate(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ServerCreateOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.ServerCreate(cmd.Context(), global, opts)
		},
	}

	cmd.Flags().IntVar(&opts.CPUs, "cpus", 1, "Number of virtual CPUs")
	cmd.Flags().IntVar(&opts.CPUSpeed, "cpu-speed", 2000, "Speed of each CPU in MHz")
	cmd.Flags().StringVar(&opts.Memory, "memory", "", "Memory size, e.g. 2G")
	cmd.Flags().StringVar(&opts.Password, "password", "", "VNC password (prompted for when omitted)")
	cmd.Flags().StringVar(&opts.AttachDrive, "attach-drive", "", "Name or uuid of an unmounted disk to boot from")
	cmd.Flags().StringVar(&opts.CreateDrive, "create-drive", "", "Create a system disk of this size, e.g. 10G")
	cmd.Flags().StringVar(&opts.BootCDROM, "boot-cdrom", "", "Name or uuid of a cdrom to boot first")
	cmd.Flags().StringVar(&opts.SMP, "smp", string(provisioning.CoreModeCore), "Expose CPUs as cores of one socket (core) or as separate CPUs (cpu)")
	cmd.MarkFlagsMutuallyExclusive("attach-drive", "create-drive")
	_ = cmd.MarkFlagRequired("memory")

	return cmd
}

func serverToggle(global *handlers.GlobalOptions, name, short string, open, closeAction handlers.ServerAction) *cobra.Command {
	return &cobra.Command{
		Use:       name + " open|close <server>",
		Short:     short,
		ValidArgs: []string{"open", "close"},
		Args:      cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var action handlers.ServerAction
			switch args[0] {
			case "open":
				action = open
			case "close":
				action = closeAction
			default:
				return fmt.Errorf("invalid argument %q: expected open or close", args[0])
			}
			return handlers.ServerToggle(cmd.Context(), global, action, args[1])
		},
	}
}
