// Package testing provides in-memory fakes, fixtures, and mocks shared by
// unit tests across the module.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - FakeService: generic in-memory resource.Service with call recording
//   - FakeServers / FakeDrives: kind-specific extras (console actions, resize)
//   - Cloud: a full set of fake services wired into a resource.Registry
//   - MockUploader: testify mock for the drive image upload collaborator
//
// Usage:
//
//	cloud := testing.NewCloud().
//	    WithServers(testing.Server("web-1")).
//	    WithDrives(testing.Disk("web-1-system", 10*units.GiB))
//	reg := cloud.Registry()
package testing
