package provisioning

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Uploader transfers a raw drive image and returns the uuid of the drive
// created from it.
type Uploader interface {
	Upload(ctx context.Context, body io.Reader) (string, error)
}

// UploadDrive uploads an image as a new drive and returns the drive uuid.
func (p *Provisioner) UploadDrive(ctx context.Context, body io.Reader) (string, error) {
	if p.uploader == nil {
		return "", errors.New("no uploader configured")
	}

	LogResourceCreating(p.observer, phaseDrive, "drive", "upload")
	id, err := p.uploader.Upload(ctx, body)
	if err != nil {
		LogPhaseFailed(p.observer, phaseDrive, err)
		return "", err
	}

	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedUploadResult, id)
	}
	LogResourceCreated(p.observer, phaseDrive, "drive", "upload", id)
	return id, nil
}
