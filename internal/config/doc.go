// Package config holds the account configuration: region and API
// credentials, plus request timeouts.
//
// Values are resolved from an optional YAML file, then CLOUDSIGMA_*
// environment variables, then command-line flags, each layer overriding the
// previous one. The resulting [Config] is passed explicitly to the API
// client; nothing here is global.
package config
