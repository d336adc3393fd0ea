// Package resource models the CloudSigma resource kinds and the operations
// shared by all of them.
//
// The closed set of kinds (server, drive, vlan, ip, subscription,
// capability) is represented by [Kind]. Each kind has a typed record
// ([Server], [Drive], [VLAN], [IP], [Subscription], [Capability]) and a
// service handle implementing [Service]. The [Registry] is a dispatch table
// from kind to service and is the only way the rest of the module reaches
// the cloud API.
//
// # Lookup
//
// [Registry.Find] resolves a name or uuid against a fresh detailed listing.
// Nothing is cached: two lookups observe independent snapshots, and callers
// that mutate a record must re-fetch it first.
//
// # Formatting
//
// [Formatter] renders one-line descriptions such as
//
//	drive 6d1c... 'debian-system' size=10G media=disk type=dssd mounted=['web-1']
//
// Names of referenced resources are resolved through the registry.
package resource
