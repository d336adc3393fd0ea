package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/ccs/internal/resource"
	"github.com/imamik/ccs/internal/units"
	"github.com/imamik/ccs/internal/util/naming"
)

const phaseServer = "server"

// CoreMode selects whether the guest sees its vCPUs as cores of one socket
// or as separate CPUs.
type CoreMode string

// Supported core modes.
const (
	CoreModeCore CoreMode = "core"
	CoreModeCPU  CoreMode = "cpu"
)

// Fixed attachment slots used for new servers.
const (
	bootOrderDisk  = 1
	bootOrderCDROM = 2
	devChannel     = "0:0"
)

// ServerRequest describes a server to create.
type ServerRequest struct {
	Name     string
	CPUCount int
	CPUSpeed int // MHz per core
	Memory   string
	Password string // VNC password

	// AttachDrive names an existing unmounted disk to boot from. It takes
	// precedence over CreateDriveSize.
	AttachDrive string
	// CreateDriveSize creates a new "<name>-system" ssd disk of this size.
	CreateDriveSize string
	// BootCDROM names a cdrom drive attached as secondary boot device.
	BootCDROM string

	CoreMode CoreMode
}

// DefaultNIC returns the interface every new server gets: public DHCP IPv4
// on a virtio NIC with no VLAN.
func DefaultNIC() resource.NIC {
	return resource.NIC{
		IPv4Conf: &resource.IPv4Conf{Conf: "dhcp"},
		Model:    "virtio",
	}
}

// CreateServer creates a server and attaches boot media, a primary disk, and
// the default NIC.
//
// The server is created first; the remaining steps then run in order, each
// aborting the workflow on failure:
//  1. boot cdrom is resolved and must have cdrom media
//  2. the primary disk is resolved (must be an unmounted disk) or created
//  3. a single DHCP NIC is assigned
//  4. drives and NICs are submitted as one update
//
// A failure after the server exists leaves the server, and a system drive
// created in step 2, in place.
func (p *Provisioner) CreateServer(ctx context.Context, req ServerRequest) (resource.Server, error) {
	start := time.Now()
	observer := p.observer.WithFields(map[string]string{"server": req.Name})
	LogPhaseStart(observer, phaseServer)

	if err := req.Validate(); err != nil {
		logValidationErrors(observer, phaseServer, err)
		LogPhaseFailed(observer, phaseServer, err)
		return resource.Server{}, err
	}
	mem, err := units.ParseSize(req.Memory)
	if err != nil {
		LogPhaseFailed(observer, phaseServer, err)
		return resource.Server{}, err
	}

	LogResourceCreating(observer, phaseServer, "server", req.Name)
	server, err := p.registry.Servers().Create(ctx, resource.Server{
		Name:               req.Name,
		CPU:                req.CPUCount * req.CPUSpeed,
		SMP:                req.CPUCount,
		Mem:                mem,
		VNCPassword:        req.Password,
		CPUsInsteadOfCores: req.CoreMode == CoreModeCPU,
	})
	if err != nil {
		LogPhaseFailed(observer, phaseServer, err)
		return resource.Server{}, err
	}
	LogResourceCreated(observer, phaseServer, "server", req.Name, server.UUID)

	var systemDrive *resource.Drive
	fail := func(err error) (resource.Server, error) {
		LogPhaseFailed(observer, phaseServer, err)
		LogResourceLeftBehind(observer, phaseServer, "server", server.Name, server.UUID)
		if systemDrive != nil {
			LogResourceLeftBehind(observer, phaseServer, "drive", systemDrive.Name, systemDrive.UUID)
		}
		return resource.Server{}, err
	}

	if req.BootCDROM != "" {
		cdrom, err := p.registry.FindDrive(ctx, req.BootCDROM)
		if err != nil {
			return fail(err)
		}
		if cdrom.Media != resource.MediaCDROM {
			return fail(fmt.Errorf("%w: boot cdrom %s must have media %s, has %s",
				ErrInvalidMedia, req.BootCDROM, resource.MediaCDROM, cdrom.Media))
		}
		server.Drives = append(server.Drives, resource.DriveAttachment{
			BootOrder:  bootOrderCDROM,
			DevChannel: devChannel,
			Device:     "ide",
			Drive:      resource.Ref{UUID: cdrom.UUID},
		})
	}

	var primary string
	switch {
	case req.AttachDrive != "":
		drive, err := p.registry.FindDrive(ctx, req.AttachDrive)
		if err != nil {
			return fail(err)
		}
		if drive.Media != resource.MediaDisk {
			return fail(fmt.Errorf("%w: drive %s must have media %s, has %s",
				ErrInvalidMedia, req.AttachDrive, resource.MediaDisk, drive.Media))
		}
		if drive.Status != resource.DriveStatusUnmounted {
			return fail(fmt.Errorf("%w: drive %s must be %s, is %s",
				ErrInvalidState, req.AttachDrive, resource.DriveStatusUnmounted, drive.Status))
		}
		primary = drive.UUID
	case req.CreateDriveSize != "":
		drive, err := p.CreateDrive(ctx, DriveRequest{
			Name:        naming.SystemDrive(req.Name),
			Size:        req.CreateDriveSize,
			Media:       resource.MediaDisk,
			StorageType: StorageSSD,
		})
		if err != nil {
			return fail(err)
		}
		systemDrive = &drive
		primary = drive.UUID
	}

	if primary != "" {
		server.Drives = append(server.Drives, resource.DriveAttachment{
			BootOrder:  bootOrderDisk,
			DevChannel: devChannel,
			Device:     "virtio",
			Drive:      resource.Ref{UUID: primary},
		})
	}

	server.NICs = []resource.NIC{DefaultNIC()}

	LogResourceUpdating(observer, phaseServer, "server", server.Name)
	updated, err := p.registry.Servers().Update(ctx, server.UUID, server)
	if err != nil {
		return fail(err)
	}
	LogResourceUpdated(observer, phaseServer, "server", updated.Name, updated.UUID)
	LogPhaseComplete(observer, phaseServer, time.Since(start))
	return updated, nil
}
