// Package provisioning implements the multi-step workflows that create and
// change resources: server creation with boot media and system disk, and the
// drive lifecycle (create, modify, resize, upload).
//
// Every step is a synchronous call through the resource.Registry and acts as
// a hard gate: the first failure aborts the workflow and is returned as-is.
// Nothing is rolled back. If server creation fails after the server itself
// was created, the server (and a freshly created system drive) stay in the
// account; the Observer receives an EventResourceLeftBehind for each.
package provisioning
