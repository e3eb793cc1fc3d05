package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/licensor/cli/internal/config"
	lerrors "github.com/licensor/cli/internal/errors"
	"github.com/licensor/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default config file to ~/.licensor/config.yaml.

The configuration includes:
  - endpoint: the license registry base URL
  - author:   a fixed author override (empty by default)
  - log:      logging settings

Examples:
  # Initialize configuration
  licensor config init

  # Overwrite existing configuration
  licensor config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return lerrors.Wrap(lerrors.ErrValidation, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		return &lerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    lerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return lerrors.Wrapf(lerrors.ErrWrite, err, "creating "+paths.HomeDir)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(paths.ConfigFile, data, 0o600); err != nil {
		return lerrors.Wrapf(lerrors.ErrWrite, err, "writing "+paths.ConfigFile)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: licensor config vet")

	return nil
}
