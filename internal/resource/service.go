package resource

import "context"

// Service is the uniform set of API operations available for every kind.
type Service[T Record] interface {
	// List returns the minimal representation of every record.
	List(ctx context.Context) ([]T, error)
	// ListDetail returns every record with all fields populated.
	ListDetail(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, uuid string, record T) (T, error)
}

// DriveService adds the drive-only resize operation.
//
// Resize is distinct from Update: the API applies live-resize constraints
// to it.
type DriveService interface {
	Service[Drive]
	Resize(ctx context.Context, uuid string, drive Drive) (Drive, error)
}

// ServerService adds server console and display (VNC) control.
type ServerService interface {
	Service[Server]
	OpenConsole(ctx context.Context, uuid string) (ActionResult, error)
	CloseConsole(ctx context.Context, uuid string) (ActionResult, error)
	OpenDisplay(ctx context.Context, uuid string) (ActionResult, error)
	CloseDisplay(ctx context.Context, uuid string) (ActionResult, error)
}

// Services bundles one service handle per kind.
type Services struct {
	Servers       ServerService
	Drives        DriveService
	VLANs         Service[VLAN]
	IPs           Service[IP]
	Subscriptions Service[Subscription]
	Capabilities  Service[Capability]
}
