package provisioning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/ccs/internal/resource"
	"github.com/imamik/ccs/internal/units"
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field   string // Request field that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying sentinel, if any
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	if ve.Message == "" && ve.Err != nil {
		return fmt.Sprintf("%s: %v", ve.Field, ve.Err)
	}
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Unwrap returns the underlying error.
func (ve ValidationError) Unwrap() error {
	return ve.Err
}

// logValidationErrors emits one validation event per failed field of err,
// which is the result of a Validate call.
func logValidationErrors(observer Observer, phase string, err error) {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		var ve ValidationError
		if errors.As(e, &ve) {
			msg := ve.Message
			if msg == "" && ve.Err != nil {
				msg = ve.Err.Error()
			}
			LogValidationError(observer, phase, ve.Field, msg)
			continue
		}
		LogValidationError(observer, phase, "", e.Error())
	}
}

// Validate checks the request before anything is created. Size fields are
// parsed here so that a typo does not leave a bare server behind.
func (r ServerRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.CPUCount <= 0 {
		errs = append(errs, ValidationError{Field: "cpus", Message: fmt.Sprintf("must be positive, got %d", r.CPUCount)})
	}
	if r.CPUSpeed <= 0 {
		errs = append(errs, ValidationError{Field: "cpu-speed", Message: fmt.Sprintf("must be positive, got %d", r.CPUSpeed)})
	}
	switch r.CoreMode {
	case "", CoreModeCore, CoreModeCPU:
	default:
		errs = append(errs, ValidationError{Field: "smp", Message: fmt.Sprintf("must be %q or %q, got %q", CoreModeCore, CoreModeCPU, r.CoreMode)})
	}
	if _, err := units.ParseSize(r.Memory); err != nil {
		errs = append(errs, ValidationError{Field: "memory", Err: err})
	}
	if r.AttachDrive == "" && r.CreateDriveSize != "" {
		if _, err := units.ParseSize(r.CreateDriveSize); err != nil {
			errs = append(errs, ValidationError{Field: "create-drive", Err: err})
		}
	}

	return errors.Join(errs...)
}

// Validate checks a drive creation request.
func (r DriveRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	switch r.Media {
	case "", resource.MediaDisk, resource.MediaCDROM:
	default:
		errs = append(errs, ValidationError{Field: "media", Err: fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMedia, r.Media, resource.MediaDisk, resource.MediaCDROM)})
	}
	if _, err := units.ParseSize(r.Size); err != nil {
		errs = append(errs, ValidationError{Field: "size", Err: err})
	}
	if _, err := MapStorageType(r.StorageType); err != nil {
		errs = append(errs, ValidationError{Field: "storage-type", Err: err})
	}

	return errors.Join(errs...)
}
