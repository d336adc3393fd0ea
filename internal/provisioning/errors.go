package provisioning

import "errors"

var (
	// ErrInvalidMedia is returned when a drive has the wrong media for its
	// role, e.g. a disk passed as boot cdrom.
	ErrInvalidMedia = errors.New("invalid media")

	// ErrInvalidState is returned when a resource is not in a state that
	// permits the action, e.g. attaching a drive that is already mounted.
	ErrInvalidState = errors.New("invalid state")

	// ErrUnknownStorageType is returned for storage types outside the
	// supported vocabulary.
	ErrUnknownStorageType = errors.New("unknown storage type")

	// ErrUnexpectedUploadResult is returned when the upload endpoint does not
	// answer with a drive uuid.
	ErrUnexpectedUploadResult = errors.New("unexpected upload result")
)
