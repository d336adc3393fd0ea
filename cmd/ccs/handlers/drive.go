package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/imamik/ccs/internal/provisioning"
)

// DriveCreateOptions configures the drive create command.
type DriveCreateOptions struct {
	Name        string
	Size        string
	Media       string
	Multimount  bool
	StorageType string
}

// DriveCreate handles the drive create command.
func DriveCreate(ctx context.Context, global *GlobalOptions, opts DriveCreateOptions) (err error) {
	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	drive, err := s.provisioner.CreateDrive(ctx, provisioning.DriveRequest{
		Name:        opts.Name,
		Size:        opts.Size,
		Media:       opts.Media,
		Multimount:  opts.Multimount,
		StorageType: opts.StorageType,
	})
	if err != nil {
		return err
	}
	return s.printRecord(ctx, drive)
}

// DriveModify handles the drive modify command. Only the given changes are
// applied.
func DriveModify(ctx context.Context, global *GlobalOptions, drive string, changes provisioning.DriveChanges) (err error) {
	if changes == (provisioning.DriveChanges{}) {
		return fmt.Errorf("nothing to modify: pass at least one of --rename, --media, --multimount, --storage-type")
	}

	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	updated, err := s.provisioner.ModifyDrive(ctx, drive, changes)
	if err != nil {
		return err
	}
	return s.printRecord(ctx, updated)
}

// DriveResize handles the drive resize command.
func DriveResize(ctx context.Context, global *GlobalOptions, drive, size string) (err error) {
	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	current, err := s.registry.FindDrive(ctx, drive)
	if err != nil {
		return err
	}
	resized, err := s.provisioner.ResizeDrive(ctx, current, size)
	if err != nil {
		return err
	}
	return s.printRecord(ctx, resized)
}

// DriveUpload handles the drive upload command. It uploads the image file
// as a new drive and prints the drive uuid.
func DriveUpload(ctx context.Context, global *GlobalOptions, path string) (err error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat image: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	s, err := openSession(global)
	if err != nil {
		return err
	}
	defer s.close(&err)

	_, _ = fmt.Fprintf(global.stderr(), "Uploading %s (%s)...\n", path, humanize.IBytes(uint64(info.Size())))
	id, err := s.provisioner.UploadDrive(ctx, f)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(global.stdout(), id)
	return nil
}
