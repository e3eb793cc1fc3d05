// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/licensor/cli/internal/config"
	"github.com/licensor/cli/internal/output"
	"github.com/licensor/cli/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded file/env configuration (may hold zero values).
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath config.Resolved

	// Endpoint is the resolved registry base URL.
	Endpoint config.Resolved

	// Author is the resolved author override (empty means the identity
	// provider chain decides).
	Author config.Resolved

	// Verbose reports whether --verbose was set.
	Verbose bool
}

// NewRootCmd creates the root command for the licensor CLI.
func NewRootCmd() *cobra.Command {
	gc := &GlobalConfig{}

	var (
		configFlag     string
		endpointFlag   string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "licensor",
		Short: "Fetch and install open-source licenses",
		Long: `licensor retrieves license metadata and text from a remote license
registry and materializes a chosen license into a local file, filling in
author, year, and project placeholders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, gc, configFlag, endpointFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: LICENSOR_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "License registry base URL (env: LICENSOR_ENDPOINT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewGetCmd(gc))
	rootCmd.AddCommand(NewInstallCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, gc *GlobalConfig, configFlag, endpointFlag string, verboseFlag, timestampsFlag bool) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return err
	}
	gc.ConfigPath = configPath

	cfg, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config still work
		cfg = &config.Config{}
	}
	gc.Config = cfg

	gc.Endpoint = config.ResolveEndpoint(config.ResolveEndpointOptions{
		FlagValue:   endpointFlag,
		ConfigValue: cfg.Endpoint,
	})
	gc.Author = config.ResolveAuthor(config.ResolveAuthorOptions{
		ConfigValue: cfg.Author,
	})
	gc.Verbose = verboseFlag

	// Resolve timestamps: flag (if explicitly set) > config > default (false)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		info := version.Get()
		output.Debug("initializing CLI",
			"version", info.Version,
			"config", gc.ConfigPath.Value,
			"endpoint", gc.Endpoint.Value,
			"endpoint_source", string(gc.Endpoint.Source),
		)
	}

	return nil
}
