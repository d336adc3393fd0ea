package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is implemented by every resource type.
type Record interface {
	Kind() Kind
	// ID returns the resource uuid.
	ID() string
	// DisplayName returns the human-assigned name, or "" when unnamed.
	DisplayName() string
}

// Ref is a reference to another resource by uuid.
//
// The API returns references as objects ({"uuid": ..., "resource_uri": ...})
// but accepts a bare uuid string on input, so Ref decodes both and always
// encodes as a string.
type Ref struct {
	UUID string
}

// MarshalJSON encodes the reference as its uuid string.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.UUID)
}

// MarshalYAML encodes the reference as its uuid string.
func (r Ref) MarshalYAML() (any, error) {
	return r.UUID, nil
}

// UnmarshalJSON accepts either a uuid string or an object with a uuid field.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.UUID)
	}
	var obj struct {
		UUID string `json:"uuid"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid resource reference: %w", err)
	}
	r.UUID = obj.UUID
	return nil
}

// Meta holds free-form resource metadata.
type Meta map[string]any

// Get returns the string value of key, or "" if absent or not a string.
func (m Meta) Get(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Server is a compute server.
type Server struct {
	UUID               string            `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Name               string            `json:"name,omitempty" yaml:"name,omitempty"`
	CPU                int               `json:"cpu,omitempty" yaml:"cpu,omitempty"` // aggregate MHz across cores
	SMP                int               `json:"smp,omitempty" yaml:"smp,omitempty"`
	Mem                int64             `json:"mem,omitempty" yaml:"mem,omitempty"`
	Status             string            `json:"status,omitempty" yaml:"status,omitempty"`
	VNCPassword        string            `json:"vnc_password,omitempty" yaml:"vnc_password,omitempty"`
	CPUsInsteadOfCores bool              `json:"cpus_instead_of_cores" yaml:"cpus_instead_of_cores"`
	Drives             []DriveAttachment `json:"drives,omitempty" yaml:"drives,omitempty"`
	NICs               []NIC             `json:"nics,omitempty" yaml:"nics,omitempty"`
	Meta               Meta              `json:"meta,omitempty" yaml:"meta,omitempty"`

	// Extra holds API members not modeled above. They are sent back
	// unchanged on update.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// DriveAttachment mounts a drive on a server.
type DriveAttachment struct {
	BootOrder  int    `json:"boot_order" yaml:"boot_order"`
	DevChannel string `json:"dev_channel" yaml:"dev_channel"`
	Device     string `json:"device" yaml:"device"`
	Drive      Ref    `json:"drive" yaml:"drive"`
}

// NIC is a server network interface configuration.
type NIC struct {
	IPv4Conf *IPv4Conf `json:"ip_v4_conf" yaml:"ip_v4_conf"`
	Model    string    `json:"model" yaml:"model"`
	VLAN     *Ref      `json:"vlan" yaml:"vlan"`
	MAC      string    `json:"mac,omitempty" yaml:"mac,omitempty"`
}

// IPv4Conf configures IPv4 addressing for a NIC.
type IPv4Conf struct {
	Conf string `json:"conf" yaml:"conf"`
	IP   *Ref   `json:"ip" yaml:"ip"`
}

// Drive is a block-storage drive.
type Drive struct {
	UUID            string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	Size            int64  `json:"size,omitempty" yaml:"size,omitempty"`
	Media           string `json:"media,omitempty" yaml:"media,omitempty"`
	StorageType     string `json:"storage_type,omitempty" yaml:"storage_type,omitempty"`
	Status          string `json:"status,omitempty" yaml:"status,omitempty"`
	AllowMultimount bool   `json:"allow_multimount" yaml:"allow_multimount"`
	MountedOn       []Ref  `json:"mounted_on,omitempty" yaml:"mounted_on,omitempty"`
	Meta            Meta   `json:"meta,omitempty" yaml:"meta,omitempty"`

	// Extra holds API members not modeled above, such as tags, affinities
	// and licenses. They are sent back unchanged on update.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// Drive media types.
const (
	MediaDisk  = "disk"
	MediaCDROM = "cdrom"
)

// DriveStatusUnmounted is the status of a drive not attached to any server.
const DriveStatusUnmounted = "unmounted"

// VLAN is a private virtual network.
type VLAN struct {
	UUID    string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Servers []Ref  `json:"servers,omitempty" yaml:"servers,omitempty"`
	Meta    Meta   `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// IP is a public IPv4 address. Its uuid is the address itself.
type IP struct {
	UUID        string   `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Server      *Ref     `json:"server,omitempty" yaml:"server,omitempty"` // nil when the address is free
	Netmask     int      `json:"netmask,omitempty" yaml:"netmask,omitempty"`
	Gateway     string   `json:"gateway,omitempty" yaml:"gateway,omitempty"`
	Nameservers []string `json:"nameservers,omitempty" yaml:"nameservers,omitempty"`
	Meta        Meta     `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Subscription is a prepaid resource subscription. Subscriptions are never named.
type Subscription struct {
	UUID      string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Resource  string `json:"resource,omitempty" yaml:"resource,omitempty"`
	Amount    string `json:"amount,omitempty" yaml:"amount,omitempty"`
	Period    string `json:"period,omitempty" yaml:"period,omitempty"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	AutoRenew bool   `json:"auto_renew" yaml:"auto_renew"`
}

// Capability describes account or location limits. Its shape is not fixed
// by the API, so it is kept as a generic document.
type Capability map[string]any

// ActionResult is returned by server console and display actions.
type ActionResult struct {
	Action string `json:"action" yaml:"action"`
	Result string `json:"result" yaml:"result"`
	UUID   string `json:"uuid" yaml:"uuid"`
	VNCURL string `json:"vnc_url,omitempty" yaml:"vnc_url,omitempty"`
}

func (Server) Kind() Kind { return KindServer }

func (s Server) ID() string { return s.UUID }

func (s Server) DisplayName() string { return s.Name }

func (Drive) Kind() Kind { return KindDrive }

func (d Drive) ID() string { return d.UUID }

func (d Drive) DisplayName() string { return d.Name }

func (VLAN) Kind() Kind { return KindVLAN }

func (v VLAN) ID() string { return v.UUID }

func (v VLAN) DisplayName() string { return v.Meta.Get("name") }

func (IP) Kind() Kind { return KindIP }

func (i IP) ID() string { return i.UUID }

func (i IP) DisplayName() string { return i.Meta.Get("name") }

func (Subscription) Kind() Kind { return KindSubscription }

func (s Subscription) ID() string { return s.UUID }

func (Subscription) DisplayName() string { return "" }

func (Capability) Kind() Kind { return KindCapability }

func (c Capability) ID() string {
	if v, ok := c["uuid"].(string); ok {
		return v
	}
	return ""
}

func (Capability) DisplayName() string { return "" }
