package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ccs/cmd/ccs/handlers"
	"github.com/imamik/ccs/internal/provisioning"
	"github.com/imamik/ccs/internal/resource"
)

// Drive returns the parent command for drive management.
func Drive(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drive",
		Short: "Manage drives",
	}

	cmd.AddCommand(DriveCreate(global))
	cmd.AddCommand(DriveModify(global))
	cmd.AddCommand(DriveResize(global))
	cmd.AddCommand(DriveUpload(global))

	return cmd
}

// DriveCreate returns the command for creating a drive.
func DriveCreate(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.DriveCreateOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.DriveCreate(cmd.Context(), global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Size, "size", "", "Drive size, e.g. 10G")
	cmd.Flags().StringVar(&opts.Media, "media", resource.MediaDisk, "Media type: disk or cdrom")
	cmd.Flags().BoolVar(&opts.Multimount, "multimount", false, "Allow mounting on several servers")
	cmd.Flags().StringVar(&opts.StorageType, "storage-type", provisioning.StorageSSD, "Storage type: ssd or magnetic")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// DriveModify returns the command for changing drive properties.
//
// Only flags that are given are applied; at least one is required.
func DriveModify(global *handlers.GlobalOptions) *cobra.Command {
	var changes provisioning.DriveChanges

	cmd := &cobra.Command{
		Use:   "modify <drive>",
		Short: "Change the name, media, multimount or storage type of a drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.DriveModify(cmd.Context(), global, args[0], changes)
		},
	}

	cmd.Flags().StringVar(&changes.Rename, "rename", "", "New drive name")
	cmd.Flags().StringVar(&changes.Media, "media", "", "Media type: disk or cdrom")
	cmd.Flags().StringVar(&changes.Multimount, "multimount", "", "enable or disable mounting on several servers")
	cmd.Flags().StringVar(&changes.StorageType, "storage-type", "", "Storage type: ssd or magnetic")

	return cmd
}

// DriveResize returns the command for resizing a drive.
func DriveResize(global *handlers.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resize <drive> <size>",
		Short: "Resize a drive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.DriveResize(cmd.Context(), global, args[0], args[1])
		},
	}
}

// DriveUpload returns the command for uploading a raw disk image as a new
// drive.
func DriveUpload(global *handlers.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a disk image as a new drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.DriveUpload(cmd.Context(), global, args[0])
		},
	}
}
