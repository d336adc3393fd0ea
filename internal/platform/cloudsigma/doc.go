// Package cloudsigma implements the resource services over the CloudSigma
// REST API.
//
// # Architecture
//
//   - client.go: client construction, authentication, request execution
//   - services.go: generic collection plus the server and drive extensions
//   - upload.go: raw drive image upload to the direct endpoint
//   - errors.go: API error type and classification
//   - metrics.go: per-request Prometheus metrics
//
// Every collection is served under {endpoint}/{resource}/. Listings use the
// {"objects": [...]} envelope; creation posts the same envelope and returns
// the first object. Requests are not retried.
package cloudsigma
