package testing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/imamik/ccs/internal/resource"
)

// FakeService is an in-memory resource.Service. List and ListDetail both
// return the stored items; Create and Update store and record their input.
type FakeService[T resource.Record] struct {
	mu     sync.Mutex
	assign func(T, string) T

	Items   []T
	Created []T
	Updated []T

	ListCalls       int
	ListDetailCalls int

	// Injected failures, returned verbatim when set.
	ListErr   error
	CreateErr error
	UpdateErr error
}

// NewFakeService creates a fake whose Create calls assign to set a fresh uuid.
func NewFakeService[T resource.Record](assign func(T, string) T, items ...T) *FakeService[T] {
	return &FakeService[T]{assign: assign, Items: items}
}

// List implements resource.Service.
func (f *FakeService[T]) List(_ context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]T(nil), f.Items...), nil
}

// ListDetail implements resource.Service.
func (f *FakeService[T]) ListDetail(_ context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListDetailCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]T(nil), f.Items...), nil
}

// Create implements resource.Service.
func (f *FakeService[T]) Create(_ context.Context, record T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, record)
	if f.CreateErr != nil {
		var zero T
		return zero, f.CreateErr
	}
	if record.ID() == "" && f.assign != nil {
		record = f.assign(record, uuid.NewString())
	}
	f.Items = append(f.Items, record)
	return record, nil
}

// Update implements resource.Service.
func (f *FakeService[T]) Update(_ context.Context, id string, record T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Updated = append(f.Updated, record)
	if f.UpdateErr != nil {
		var zero T
		return zero, f.UpdateErr
	}
	f.replace(id, record)
	return record, nil
}

// LastUpdate returns the most recent record passed to Update.
func (f *FakeService[T]) LastUpdate() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Updated) == 0 {
		var zero T
		return zero, false
	}
	return f.Updated[len(f.Updated)-1], true
}

func (f *FakeService[T]) replace(id string, record T) {
	for i, item := range f.Items {
		if item.ID() == id {
			f.Items[i] = record
			return
		}
	}
}

// FakeServers is a fake resource.ServerService recording console actions.
type FakeServers struct {
	*FakeService[resource.Server]

	// Actions records "<action>:<uuid>" for every console/display call.
	Actions []string
}

// NewFakeServers creates a server fake seeded with items.
func NewFakeServers(items ...resource.Server) *FakeServers {
	return &FakeServers{
		FakeService: NewFakeService(func(s resource.Server, id string) resource.Server {
			s.UUID = id
			if s.Status == "" {
				s.Status = "stopped"
			}
			return s
		}, items...),
	}
}

// OpenConsole implements resource.ServerService.
func (f *FakeServers) OpenConsole(_ context.Context, id string) (resource.ActionResult, error) {
	return f.action("open_console", id), nil
}

// CloseConsole implements resource.ServerService.
func (f *FakeServers) CloseConsole(_ context.Context, id string) (resource.ActionResult, error) {
	return f.action("close_console", id), nil
}

// OpenDisplay implements resource.ServerService.
func (f *FakeServers) OpenDisplay(_ context.Context, id string) (resource.ActionResult, error) {
	r := f.action("open_vnc", id)
	r.VNCURL = "vnc://fake:41000"
	return r, nil
}

// CloseDisplay implements resource.ServerService.
func (f *FakeServers) CloseDisplay(_ context.Context, id string) (resource.ActionResult, error) {
	return f.action("close_vnc", id), nil
}

func (f *FakeServers) action(name, id string) resource.ActionResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Actions = append(f.Actions, name+":"+id)
	return resource.ActionResult{Action: name, Result: "success", UUID: id}
}

// FakeDrives is a fake resource.DriveService recording resizes.
type FakeDrives struct {
	*FakeService[resource.Drive]

	Resized   []resource.Drive
	ResizeErr error
}

// NewFakeDrives creates a drive fake seeded with items. Created drives
// start out unmounted.
func NewFakeDrives(items ...resource.Drive) *FakeDrives {
	return &FakeDrives{
		FakeService: NewFakeService(func(d resource.Drive, id string) resource.Drive {
			d.UUID = id
			d.Status = resource.DriveStatusUnmounted
			return d
		}, items...),
	}
}

// Resize implements resource.DriveService.
func (f *FakeDrives) Resize(_ context.Context, id string, drive resource.Drive) (resource.Drive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Resized = append(f.Resized, drive)
	if f.ResizeErr != nil {
		return resource.Drive{}, f.ResizeErr
	}
	f.replace(id, drive)
	return drive, nil
}
