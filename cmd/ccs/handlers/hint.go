package handlers

import (
	"errors"
	"fmt"

	"github.com/imamik/ccs/internal/config"
	"github.com/imamik/ccs/internal/platform/cloudsigma"
	"github.com/imamik/ccs/internal/resource"
)

// withHint appends what the user can do about an API error. The original
// error stays in the chain.
func withHint(err error, region string) error {
	switch {
	case err == nil:
		return nil
	case cloudsigma.IsUnauthorized(err):
		return fmt.Errorf("%w\nhint: check %s and %s (or the config file) for region %q",
			err, config.EnvUsername, config.EnvPassword, region)
	case cloudsigma.IsConflict(err):
		return fmt.Errorf("%w\nhint: the resource is busy or in use, e.g. a drive mounted on a running server; stop the server and retry", err)
	case cloudsigma.IsNotFound(err):
		return fmt.Errorf("%w\nhint: the resource no longer exists in region %q", err, region)
	case resource.IsNotFound(err):
		var nf *resource.NotFoundError
		if errors.As(err, &nf) {
			return fmt.Errorf("%w\nhint: run 'ccs list %s --human' to see the available names", err, nf.Kind.Plural())
		}
	}
	return err
}
