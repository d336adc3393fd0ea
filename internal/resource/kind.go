package resource

import (
	"fmt"
	"strings"
)

// Kind identifies one of the resource types exposed by the cloud API.
type Kind string

// Supported resource kinds.
const (
	KindServer       Kind = "server"
	KindDrive        Kind = "drive"
	KindVLAN         Kind = "vlan"
	KindIP           Kind = "ip"
	KindSubscription Kind = "subscription"
	KindCapability   Kind = "capability"
)

var kinds = []Kind{
	KindServer,
	KindDrive,
	KindVLAN,
	KindIP,
	KindSubscription,
	KindCapability,
}

var plurals = map[Kind]string{
	KindServer:       "servers",
	KindDrive:        "drives",
	KindVLAN:         "vlans",
	KindIP:           "ips",
	KindSubscription: "subscriptions",
	KindCapability:   "capabilities",
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind accepts a kind in singular or plural form, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range kinds {
		if name == string(k) || name == plurals[k] {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResourceKind, s)
}

func (k Kind) String() string {
	return string(k)
}

// Plural returns the collection name used by the API and the CLI.
func (k Kind) Plural() string {
	if p, ok := plurals[k]; ok {
		return p
	}
	return string(k) + "s"
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := plurals[k]
	return ok
}
