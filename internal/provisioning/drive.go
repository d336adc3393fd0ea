package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/ccs/internal/resource"
	"github.com/imamik/ccs/internal/units"
)

const phaseDrive = "drive"

// Storage types accepted from users.
const (
	StorageSSD      = "ssd"
	StorageMagnetic = "magnetic"
)

var storageTypes = map[string]string{
	StorageSSD:      "dssd",
	StorageMagnetic: "zadara",
}

// MultimountEnable is the only token that turns multimount on in DriveChanges.
const MultimountEnable = "enable"

// MapStorageType translates a user-facing storage type to the backend token.
func MapStorageType(storageType string) (string, error) {
	if backend, ok := storageTypes[storageType]; ok {
		return backend, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownStorageType, storageType, StorageSSD, StorageMagnetic)
}

// DriveRequest describes a drive to create.
type DriveRequest struct {
	Name        string
	Size        string // e.g. "10G"
	Media       string // disk (default) or cdrom
	Multimount  bool
	StorageType string // ssd or magnetic
}

// DriveChanges lists the fields to change on an existing drive. Empty fields
// are left untouched.
type DriveChanges struct {
	Rename string
	Media  string
	// Multimount is "enable" to allow multimount; any other non-empty value
	// disallows it.
	Multimount  string
	StorageType string
}

// CreateDrive creates a drive.
func (p *Provisioner) CreateDrive(ctx context.Context, req DriveRequest) (resource.Drive, error) {
	if req.Media == "" {
		req.Media = resource.MediaDisk
	}
	if err := req.Validate(); err != nil {
		logValidationErrors(p.observer, phaseDrive, err)
		return resource.Drive{}, err
	}
	size, err := units.ParseSize(req.Size)
	if err != nil {
		LogPhaseFailed(p.observer, phaseDrive, err)
		return resource.Drive{}, err
	}
	backend, err := MapStorageType(req.StorageType)
	if err != nil {
		LogPhaseFailed(p.observer, phaseDrive, err)
		return resource.Drive{}, err
	}

	LogResourceCreating(p.observer, phaseDrive, "drive", req.Name)
	drive, err := p.registry.Drives().Create(ctx, resource.Drive{
		Name:            req.Name,
		Size:            size,
		Media:           req.Media,
		StorageType:     backend,
		AllowMultimount: req.Multimount,
	})
	if err != nil {
		LogPhaseFailed(p.observer, phaseDrive, err)
		return resource.Drive{}, err
	}
	LogResourceCreated(p.observer, phaseDrive, "drive", drive.Name, drive.UUID)
	return drive, nil
}

// ModifyDrive re-fetches the drive identified by name or uuid, applies the
// non-empty fields of changes, and submits the update.
func (p *Provisioner) ModifyDrive(ctx context.Context, identifier string, changes DriveChanges) (resource.Drive, error) {
	var backend string
	if changes.StorageType != "" {
		var err error
		if backend, err = MapStorageType(changes.StorageType); err != nil {
			return resource.Drive{}, err
		}
	}

	drive, err := p.registry.FindDrive(ctx, identifier)
	if err != nil {
		return resource.Drive{}, err
	}

	if changes.Rename != "" {
		drive.Name = changes.Rename
	}
	if changes.Media != "" {
		drive.Media = changes.Media
	}
	if changes.Multimount != "" {
		drive.AllowMultimount = changes.Multimount == MultimountEnable
	}
	if backend != "" {
		drive.StorageType = backend
	}

	LogResourceUpdating(p.observer, phaseDrive, "drive", drive.Name)
	updated, err := p.registry.Drives().Update(ctx, drive.UUID, drive)
	if err != nil {
		LogPhaseFailed(p.observer, phaseDrive, err)
		return resource.Drive{}, err
	}
	LogResourceUpdated(p.observer, phaseDrive, "drive", updated.Name, updated.UUID)
	return updated, nil
}

// ResizeDrive sets the size of drive and submits it through the resize
// operation rather than a plain update.
func (p *Provisioner) ResizeDrive(ctx context.Context, drive resource.Drive, size string) (resource.Drive, error) {
	bytes, err := units.ParseSize(size)
	if err != nil {
		return resource.Drive{}, err
	}
	drive.Size = bytes

	start := time.Now()
	p.observer.Printf("[Drive] Resizing %s to %s", drive.UUID, units.FormatSize(bytes))
	resized, err := p.registry.Drives().Resize(ctx, drive.UUID, drive)
	if err != nil {
		LogPhaseFailed(p.observer, phaseDrive, err)
		return resource.Drive{}, err
	}
	LogPhaseComplete(p.observer, phaseDrive, time.Since(start))
	return resized, nil
}
