package testing

import (
	"github.com/google/uuid"

	"github.com/imamik/ccs/internal/resource"
)

// Cloud is a complete set of fake services.
type Cloud struct {
	Servers       *FakeServers
	Drives        *FakeDrives
	VLANs         *FakeService[resource.VLAN]
	IPs           *FakeService[resource.IP]
	Subscriptions *FakeService[resource.Subscription]
	Capabilities  *FakeService[resource.Capability]
}

// NewCloud creates an empty fake cloud.
func NewCloud() *Cloud {
	return &Cloud{
		Servers: NewFakeServers(),
		Drives:  NewFakeDrives(),
		VLANs: NewFakeService(func(v resource.VLAN, id string) resource.VLAN {
			v.UUID = id
			return v
		}),
		IPs: NewFakeService(func(ip resource.IP, id string) resource.IP {
			ip.UUID = id
			return ip
		}),
		Subscriptions: NewFakeService(func(s resource.Subscription, id string) resource.Subscription {
			s.UUID = id
			return s
		}),
		Capabilities: NewFakeService[resource.Capability](nil),
	}
}

// WithServers seeds servers. Returns the same cloud for chaining.
func (c *Cloud) WithServers(servers ...resource.Server) *Cloud {
	c.Servers.Items = append(c.Servers.Items, servers...)
	return c
}

// WithDrives seeds drives.
func (c *Cloud) WithDrives(drives ...resource.Drive) *Cloud {
	c.Drives.Items = append(c.Drives.Items, drives...)
	return c
}

// WithVLANs seeds VLANs.
func (c *Cloud) WithVLANs(vlans ...resource.VLAN) *Cloud {
	c.VLANs.Items = append(c.VLANs.Items, vlans...)
	return c
}

// WithIPs seeds IPs.
func (c *Cloud) WithIPs(ips ...resource.IP) *Cloud {
	c.IPs.Items = append(c.IPs.Items, ips...)
	return c
}

// WithSubscriptions seeds subscriptions.
func (c *Cloud) WithSubscriptions(subs ...resource.Subscription) *Cloud {
	c.Subscriptions.Items = append(c.Subscriptions.Items, subs...)
	return c
}

// Services returns the fakes as resource.Services.
func (c *Cloud) Services() resource.Services {
	return resource.Services{
		Servers:       c.Servers,
		Drives:        c.Drives,
		VLANs:         c.VLANs,
		IPs:           c.IPs,
		Subscriptions: c.Subscriptions,
		Capabilities:  c.Capabilities,
	}
}

// Registry returns a registry backed by the fakes.
func (c *Cloud) Registry() *resource.Registry {
	return resource.NewRegistry(c.Services())
}

// Server returns a running 2x2GHz, 2G server with a fresh uuid.
func Server(name string) resource.Server {
	return resource.Server{
		UUID:   uuid.NewString(),
		Name:   name,
		CPU:    4000,
		SMP:    2,
		Mem:    2 << 30,
		Status: "running",
	}
}

// Disk returns an unmounted dssd disk drive with a fresh uuid.
func Disk(name string, size int64) resource.Drive {
	return resource.Drive{
		UUID:        uuid.NewString(),
		Name:        name,
		Size:        size,
		Media:       resource.MediaDisk,
		StorageType: "dssd",
		Status:      resource.DriveStatusUnmounted,
	}
}

// CDROM returns an unmounted cdrom drive with a fresh uuid.
func CDROM(name string, size int64) resource.Drive {
	d := Disk(name, size)
	d.Media = resource.MediaCDROM
	return d
}

// MountedOn marks d as mounted on the given servers.
func MountedOn(d resource.Drive, servers ...resource.Server) resource.Drive {
	d.Status = "mounted"
	for _, s := range servers {
		d.MountedOn = append(d.MountedOn, resource.Ref{UUID: s.UUID})
	}
	return d
}
