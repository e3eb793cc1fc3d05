package config

import (
	"os"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// Resolved is a configuration value paired with its source.
type Resolved struct {
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// resolve applies precedence flag > env > config > default.
func resolve(flagValue, envName, configValue, defaultValue string) Resolved {
	result := Resolved{
		Shadowed: make(map[Source]string),
	}

	envValue := ""
	if envName != "" {
		envValue = os.Getenv(envName)
	}

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = defaultValue
		result.Source = SourceDefault
	}

	return result
}

// ResolveEndpointOptions contains options for endpoint resolution.
type ResolveEndpointOptions struct {
	// FlagValue is the --endpoint flag value (empty if not set).
	FlagValue string
	// ConfigValue is the endpoint value from the config file (empty if not set).
	ConfigValue string
}

// ResolveEndpoint resolves the registry base URL using precedence:
// (1) --endpoint flag, (2) LICENSOR_ENDPOINT env, (3) config endpoint,
// (4) built-in default.
func ResolveEndpoint(opts ResolveEndpointOptions) Resolved {
	return resolve(opts.FlagValue, "LICENSOR_ENDPOINT", opts.ConfigValue, DefaultConfig().Endpoint)
}

// ResolveAuthorOptions contains options for author resolution.
type ResolveAuthorOptions struct {
	// FlagValue is the --author flag value (empty if not set).
	FlagValue string
	// ConfigValue is the author value from the config file (empty if not set).
	ConfigValue string
}

// ResolveAuthor resolves the author override using precedence:
// (1) --author flag, (2) LICENSOR_AUTHOR env, (3) config author.
// An empty result means the identity provider chain decides.
func ResolveAuthor(opts ResolveAuthorOptions) Resolved {
	return resolve(opts.FlagValue, "LICENSOR_AUTHOR", opts.ConfigValue, "")
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) LICENSOR_CONFIG env, (3) ~/.licensor/config.yaml default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (Resolved, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return Resolved{}, err
	}

	return resolve(opts.FlagValue, "LICENSOR_CONFIG", "", paths.ConfigFile), nil
}
