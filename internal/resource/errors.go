package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("resource not found")

	// ErrUnknownResourceKind is returned for kinds outside the closed set or
	// kinds the registry has no service for.
	ErrUnknownResourceKind = errors.New("unknown resource kind")
)

// NotFoundError reports that no record of Kind matched Query by name or uuid.
type NotFoundError struct {
	Kind  Kind
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s %s", e.Kind, e.Query)
}

// Is makes errors.Is(err, ErrNotFound) true for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound checks if an error indicates a failed name or uuid lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
