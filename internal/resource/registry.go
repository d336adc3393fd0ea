package resource

import (
	"context"
	"fmt"
)

// lister is the kind-erased view of a Service used for kind-generic dispatch.
type lister struct {
	list       func(ctx context.Context) ([]Record, error)
	listDetail func(ctx context.Context) ([]Record, error)
}

func erase[T Record](svc Service[T]) lister {
	convert := func(items []T, err error) ([]Record, error) {
		if err != nil {
			return nil, err
		}
		out := make([]Record, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, nil
	}
	return lister{
		list: func(ctx context.Context) ([]Record, error) {
			return convert(svc.List(ctx))
		},
		listDetail: func(ctx context.Context) ([]Record, error) {
			return convert(svc.ListDetail(ctx))
		},
	}
}

// Registry dispatches operations to the service for each resource kind.
// It holds no state besides the service handles.
type Registry struct {
	services Services
	listers  map[Kind]lister
}

// NewRegistry builds a registry over the given services. Kinds whose
// service is nil are left out and report ErrUnknownResourceKind.
func NewRegistry(s Services) *Registry {
	r := &Registry{
		services: s,
		listers:  make(map[Kind]lister),
	}
	if s.Servers != nil {
		r.listers[KindServer] = erase[Server](s.Servers)
	}
	if s.Drives != nil {
		r.listers[KindDrive] = erase[Drive](s.Drives)
	}
	if s.VLANs != nil {
		r.listers[KindVLAN] = erase(s.VLANs)
	}
	if s.IPs != nil {
		r.listers[KindIP] = erase(s.IPs)
	}
	if s.Subscriptions != nil {
		r.listers[KindSubscription] = erase(s.Subscriptions)
	}
	if s.Capabilities != nil {
		r.listers[KindCapability] = erase(s.Capabilities)
	}
	return r
}

// Servers returns the server service.
func (r *Registry) Servers() ServerService { return r.services.Servers }

// Drives returns the drive service.
func (r *Registry) Drives() DriveService { return r.services.Drives }

// List returns all records of kind. With detail set, full records are
// fetched; otherwise the API's minimal representation is returned.
func (r *Registry) List(ctx context.Context, kind Kind, detail bool) ([]Record, error) {
	l, ok := r.listers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResourceKind, kind)
	}
	if detail {
		return l.listDetail(ctx)
	}
	return l.list(ctx)
}

// OpenConsole resolves a server by name or uuid and opens its serial console.
func (r *Registry) OpenConsole(ctx context.Context, query string) (ActionResult, error) {
	return r.serverAction(ctx, query, ServerService.OpenConsole)
}

// CloseConsole resolves a server by name or uuid and closes its serial console.
func (r *Registry) CloseConsole(ctx context.Context, query string) (ActionResult, error) {
	return r.serverAction(ctx, query, ServerService.CloseConsole)
}

// OpenDisplay resolves a server by name or uuid and opens its VNC display.
func (r *Registry) OpenDisplay(ctx context.Context, query string) (ActionResult, error) {
	return r.serverAction(ctx, query, ServerService.OpenDisplay)
}

// CloseDisplay resolves a server by name or uuid and closes its VNC display.
func (r *Registry) CloseDisplay(ctx context.Context, query string) (ActionResult, error) {
	return r.serverAction(ctx, query, ServerService.CloseDisplay)
}

func (r *Registry) serverAction(ctx context.Context, query string, action func(ServerService, context.Context, string) (ActionResult, error)) (ActionResult, error) {
	server, err := r.FindServer(ctx, query)
	if err != nil {
		return ActionResult{}, err
	}
	return action(r.services.Servers, ctx, server.UUID)
}
