package provisioning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ccs/internal/resource"
	cstest "github.com/imamik/ccs/internal/testing"
	"github.com/imamik/ccs/internal/units"
)

func TestMapStorageType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "ssd", want: "dssd"},
		{in: "magnetic", want: "zadara"},
		{in: "bogus", wantErr: true},
		{in: "", wantErr: true},
		{in: "SSD", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := MapStorageType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStorageType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateDrive(t *testing.T) {
	t.Parallel()
	cloud := cstest.NewCloud()
	p, observer := newTestProvisioner(cloud)

	drive, err := p.CreateDrive(cstest.TestContext(t), DriveRequest{
		Name:        "data",
		Size:        "1.5G",
		Multimount:  true,
		StorageType: StorageMagnetic,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, drive.UUID)
	assert.Equal(t, int64(1610612736), drive.Size)
	assert.Equal(t, resource.MediaDisk, drive.Media, "media defaults to disk")
	assert.Equal(t, "zadara", drive.StorageType)
	assert.True(t, drive.AllowMultimount)
	assert.Len(t, observer.ofType(EventResourceCreated), 1)
}

func TestCreateDrive_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		req   DriveRequest
		want  error
		field string
	}{
		{name: "size", req: DriveRequest{Name: "d", Size: "huge", StorageType: StorageSSD}, want: units.ErrInvalidSize, field: "size"},
		{name: "storage", req: DriveRequest{Name: "d", Size: "1G", StorageType: "tape"}, want: ErrUnknownStorageType, field: "storage-type"},
		{name: "media", req: DriveRequest{Name: "d", Size: "1G", Media: "floppy", StorageType: StorageSSD}, want: ErrInvalidMedia, field: "media"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cloud := cstest.NewCloud()
			p, observer := newTestProvisioner(cloud)

			_, err := p.CreateDrive(cstest.TestContext(t), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, cloud.Drives.Created)

			events := observer.ofType(EventValidationError)
			require.Len(t, events, 1)
			assert.Equal(t, tt.field, events[0].Fields["field"])
		})
	}
}

func TestModifyDrive_RenameOnly(t *testing.T) {
	t.Parallel()
	drive := cstest.CDROM("old", units.GiB)
	drive.AllowMultimount = true
	cloud := cstest.NewCloud().WithDrives(drive)
	p, _ := newTestProvisioner(cloud)

	_, err := p.ModifyDrive(cstest.TestContext(t), "old", DriveChanges{Rename: "new"})
	require.NoError(t, err)

	update, ok := cloud.Drives.LastUpdate()
	require.True(t, ok)
	assert.Equal(t, "new", update.Name)
	assert.Equal(t, drive.UUID, update.UUID)
	assert.Equal(t, resource.MediaCDROM, update.Media)
	assert.True(t, update.AllowMultimount)
	assert.Equal(t, "dssd", update.StorageType)
	assert.Equal(t, drive.Size, update.Size)
}

func TestModifyDrive_Fields(t *testing.T) {
	t.Parallel()
	drive := cstest.Disk("data", units.GiB)
	cloud := cstest.NewCloud().WithDrives(drive)
	p, _ := newTestProvisioner(cloud)

	updated, err := p.ModifyDrive(cstest.TestContext(t), drive.UUID, DriveChanges{
		Media:       resource.MediaCDROM,
		Multimount:  MultimountEnable,
		StorageType: StorageMagnetic,
	})
	require.NoError(t, err)
	assert.Equal(t, "data", updated.Name)
	assert.Equal(t, resource.MediaCDROM, updated.Media)
	assert.True(t, updated.AllowMultimount)
	assert.Equal(t, "zadara", updated.StorageType)
}

func TestModifyDrive_Multimount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		token   string
		initial bool
		want    bool
	}{
		{token: "enable", initial: false, want: true},
		{token: "disable", initial: true, want: false},
		{token: "yes", initial: true, want: false},
		{token: "", initial: true, want: true},
		{token: "", initial: false, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			drive := cstest.Disk("data", units.GiB)
			drive.AllowMultimount = tt.initial
			cloud := cstest.NewCloud().WithDrives(drive)
			p, _ := newTestProvisioner(cloud)

			updated, err := p.ModifyDrive(cstest.TestContext(t), "data", DriveChanges{Multimount: tt.token})
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated.AllowMultimount)
		})
	}
}

func TestModifyDrive_Errors(t *testing.T) {
	t.Parallel()
	cloud := cstest.NewCloud().WithDrives(cstest.Disk("data", units.GiB))
	p, _ := newTestProvisioner(cloud)
	ctx := cstest.TestContext(t)

	_, err := p.ModifyDrive(ctx, "data", DriveChanges{StorageType: "tape"})
	assert.ErrorIs(t, err, ErrUnknownStorageType)
	assert.Zero(t, cloud.Drives.ListDetailCalls, "storage type is checked before lookup")

	_, err = p.ModifyDrive(ctx, "missing", DriveChanges{Rename: "x"})
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.Empty(t, cloud.Drives.Updated)
}

func TestResizeDrive(t *testing.T) {
	t.Parallel()
	drive := cstest.Disk("data", units.GiB)
	cloud := cstest.NewCloud().WithDrives(drive)
	p, _ := newTestProvisioner(cloud)

	resized, err := p.ResizeDrive(cstest.TestContext(t), drive, "20G")
	require.NoError(t, err)
	assert.Equal(t, int64(20*units.GiB), resized.Size)
	require.Len(t, cloud.Drives.Resized, 1)
	assert.Empty(t, cloud.Drives.Updated, "resize does not go through update")
}

func TestResizeDrive_Errors(t *testing.T) {
	t.Parallel()
	drive := cstest.Disk("data", units.GiB)
	cloud := cstest.NewCloud().WithDrives(drive)
	p, _ := newTestProvisioner(cloud)
	ctx := cstest.TestContext(t)

	_, err := p.ResizeDrive(ctx, drive, "20X")
	assert.ErrorIs(t, err, units.ErrInvalidSize)
	assert.Empty(t, cloud.Drives.Resized)

	apiErr := errors.New("drive is mounted")
	cloud.Drives.ResizeErr = apiErr
	_, err = p.ResizeDrive(ctx, drive, "20G")
	assert.Equal(t, apiErr, err)
}
