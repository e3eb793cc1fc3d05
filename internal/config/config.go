// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the licensor CLI configuration.
// Loaded from ~/.licensor/config.yaml.
type Config struct {
	// Endpoint is the license registry base URL.
	// Env: LICENSOR_ENDPOINT
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`

	// Author overrides the git/OS-user default author for installs.
	// Env: LICENSOR_AUTHOR
	Author string `mapstructure:"author" yaml:"author,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `licensor config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "https://api.github.com/licenses",
	}
}
