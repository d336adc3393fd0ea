package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Environment variables read by ApplyEnv.
const (
	EnvRegion   = "CLOUDSIGMA_REGION"
	EnvUsername = "CLOUDSIGMA_USERNAME"
	EnvPassword = "CLOUDSIGMA_PASSWORD"
)

// ErrMissingCredentials is returned by Validate when a required value is unset.
var ErrMissingCredentials = errors.New("missing credentials")

// Config is the account configuration.
type Config struct {
	Region   string `mapstructure:"region" yaml:"region"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
}

// Overrides holds values given on the command line. Empty fields are ignored.
type Overrides struct {
	Region   string
	Username string
}

// ApplyEnv overlays values from CLOUDSIGMA_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		c.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		c.Password = v
	}
}

// ApplyOverrides overlays command-line values.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Region != "" {
		c.Region = o.Region
	}
	if o.Username != "" {
		c.Username = o.Username
	}
}

// Validate checks that region, username, and password are all set and that
// the region can be used as a host name label.
func (c *Config) Validate() error {
	var missing []string
	if c.Region == "" {
		missing = append(missing, "region ("+EnvRegion+")")
	}
	if c.Username == "" {
		missing = append(missing, "username ("+EnvUsername+")")
	}
	if c.Password == "" {
		missing = append(missing, "password ("+EnvPassword+")")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	if !validRegion(c.Region) {
		return fmt.Errorf("invalid region %q: must be lowercase letters and digits", c.Region)
	}
	return nil
}

// APIEndpoint returns the REST API base URL for the region.
func (c *Config) APIEndpoint() string {
	return fmt.Sprintf("https://%s.cloudsigma.com/api/2.0/", c.Region)
}

// UploadEndpoint returns the raw drive image upload URL for the region.
func (c *Config) UploadEndpoint() string {
	return fmt.Sprintf("https://direct.%s.cloudsigma.com/api/2.0/drives/upload/", c.Region)
}

func validRegion(region string) bool {
	for _, r := range region {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return region != ""
}
