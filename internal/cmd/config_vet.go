package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/licensor/cli/internal/config"
	lerrors "github.com/licensor/cli/internal/errors"
	"github.com/licensor/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration",
		Long: `Load the configuration and check that every value is usable.

Reports where each value came from (flag, env, config file, or built-in
default) and fails if the registry endpoint is not an absolute URL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigVet(gc)
		},
	}
}

func runConfigVet(gc *GlobalConfig) error {
	exists, err := config.ConfigFileExists(gc.ConfigPath.Value)
	if err != nil {
		return err
	}
	if !exists {
		output.Warn("config file not found, using env and defaults", "path", gc.ConfigPath.Value)
	}

	// Root swallows load errors so unrelated commands still work; vet
	// reloads so a malformed file fails here.
	if _, err := config.NewLoader().Load(gc.ConfigPath.Value); err != nil {
		return &lerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: gc.ConfigPath.Value,
			Hint:     "Fix the YAML syntax or regenerate with 'licensor config init --force'.",
			Cause:    lerrors.ErrValidation,
		}
	}

	u, err := url.Parse(gc.Endpoint.Value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &lerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("endpoint is not an absolute URL: %q", gc.Endpoint.Value),
			Location: gc.ConfigPath.Value,
			Hint:     "Set endpoint to a registry base URL like https://api.github.com/licenses.",
			Cause:    lerrors.ErrValidation,
		}
	}

	printResolved := func(name string, r config.Resolved) {
		value := r.Value
		if value == "" {
			value = "(unset)"
		}
		output.Println(fmt.Sprintf("  %-10s %s %s", name, value,
			output.StyleDim.Render("["+string(r.Source)+"]")))
	}

	output.Println(output.FormatCheckmark("configuration is valid"))
	printResolved("config", gc.ConfigPath)
	printResolved("endpoint", gc.Endpoint)
	printResolved("author", gc.Author)

	return nil
}
