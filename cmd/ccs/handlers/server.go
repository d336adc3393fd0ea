package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/ccs/internal/provisioning"
	"github.com/imamik/ccs/internal/resource"
	"github.com/imamik/ccs/internal/ui"
)

// ServerCreateOptions configures the server create command.
type ServerCreateOptions struct {
	Name        string
	CPUs        int
	CPUSpeed    int
	Memory      string
	Password    string
	AttachDrive string
	CreateDrive string
	BootCDROM   string
	SMP         string
}

// ServerCreate handles the server create command.
//
// The VNC password is prompted for when not given and stdin is a terminal.
// If a step after the server creation fails, the server is left in place.
func ServerCreate(ctx context.Context, global *GlobalOptions, opts ServerCreateOptions) (err error) {
	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	if opts.Password == "" {
		if !stdinIsTerminal() {
			return fmt.Errorf("--password is required: %w", ui.ErrNotInteractive)
		}
		opts.Password, err = promptPassword(ctx, "VNC password", "Password for the console of server "+opts.Name)
		if err != nil {
			return err
		}
	}

	server, err := s.provisioner.CreateServer(ctx, provisioning.ServerRequest{
		Name:            opts.Name,
		CPUCount:        opts.CPUs,
		CPUSpeed:        opts.CPUSpeed,
		Memory:          opts.Memory,
		Password:        opts.Password,
		AttachDrive:     opts.AttachDrive,
		CreateDriveSize: opts.CreateDrive,
		BootCDROM:       opts.BootCDROM,
		CoreMode:        provisioning.CoreMode(opts.SMP),
	})
	if err != nil {
		return err
	}
	return s.printRecord(ctx, server)
}

// ServerAction names a console or display toggle.
type ServerAction string

// Server actions.
const (
	OpenConsole  ServerAction = "console-open"
	CloseConsole ServerAction = "console-close"
	OpenDisplay  ServerAction = "display-open"
	CloseDisplay ServerAction = "display-close"
)

// ServerToggle handles the server console and display commands.
func ServerToggle(ctx context.Context, global *GlobalOptions, action ServerAction, server string) (err error) {
	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	var call func(context.Context, string) (resource.ActionResult, error)
	switch action {
	case OpenConsole:
		call = s.registry.OpenConsole
	case CloseConsole:
		call = s.registry.CloseConsole
	case OpenDisplay:
		call = s.registry.OpenDisplay
	case CloseDisplay:
		call = s.registry.CloseDisplay
	default:
		return fmt.Errorf("unknown server action %q", action)
	}

	result, err := call(ctx, server)
	if err != nil {
		return err
	}
	return writeJSON(global.stdout(), result)
}
