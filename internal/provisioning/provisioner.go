package provisioning

import (
	"github.com/imamik/ccs/internal/resource"
)

// Provisioner runs server and drive workflows against a registry.
type Provisioner struct {
	registry *resource.Registry
	uploader Uploader
	observer Observer
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithObserver sets the observer receiving provisioning events.
func WithObserver(o Observer) Option {
	return func(p *Provisioner) {
		p.observer = o
	}
}

// WithUploader sets the collaborator used by UploadDrive.
func WithUploader(u Uploader) Option {
	return func(p *Provisioner) {
		p.uploader = u
	}
}

// NewProvisioner creates a provisioner. Events are discarded unless an
// observer is configured.
func NewProvisioner(registry *resource.Registry, opts ...Option) *Provisioner {
	p := &Provisioner{
		registry: registry,
		observer: NewDiscardObserver(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
