package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lerrors "github.com/licensor/cli/internal/errors"
	"github.com/licensor/cli/internal/output"
	"github.com/licensor/cli/internal/registry"
)

// NewGetCmd creates the get command.
func NewGetCmd(gc *GlobalConfig) *cobra.Command {
	var listFlag bool

	cmd := &cobra.Command{
		Use:   "get [<key>...]",
		Short: "List available licenses or show full license records",
		Long: `Query the license registry.

With --list, prints a key/name/url table of every available license.
With one or more keys, fetches and prints the full record for each key
in input order. The batch aborts on the first failing key.

Examples:
  # List all available licenses
  licensor get --list

  # Show the full MIT record
  licensor get mit

  # Show several records at once
  licensor get mit apache-2.0 gpl-3.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, gc, listFlag, args)
		},
	}

	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List all available licenses")

	return cmd
}

func runGet(cmd *cobra.Command, gc *GlobalConfig, list bool, keys []string) error {
	if !list && len(keys) == 0 {
		return &lerrors.DetailError{
			Type:    "validation failed",
			Message: "nothing to do: no keys given and --list not set",
			Hint:    "Run 'licensor get --list' to see available licenses, or pass one or more keys.",
			Cause:   lerrors.ErrValidation,
		}
	}

	client := registry.NewClient(gc.Endpoint.Value)

	if list {
		return runGetList(cmd, client)
	}
	return runGetKeys(cmd, client, keys)
}

func runGetList(cmd *cobra.Command, client *registry.Client) error {
	var summaries []registry.Summary
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var listErr error
		summaries, listErr = client.List(cmd.Context())
		return listErr
	}, output.WithTitle("Fetching license list..."))
	if err != nil {
		return err
	}

	output.Debug("fetched license list", "count", len(summaries))

	rows := make([]output.LicenseRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, output.LicenseRow{Key: s.Key, Name: s.Name, URL: s.URL})
	}

	output.Println(output.RenderLicenseTable(rows))
	return nil
}

func runGetKeys(cmd *cobra.Command, client *registry.Client, keys []string) error {
	// Results follow input order; the whole batch fails on the first
	// failing key, with no partial output.
	licenses := make([]*registry.License, 0, len(keys))
	err := output.RunWithSpinner(cmd.Context(), func() error {
		for _, key := range keys {
			lic, getErr := client.Get(cmd.Context(), key)
			if getErr != nil {
				return getErr
			}
			licenses = append(licenses, lic)
		}
		return nil
	}, output.WithTitle("Fetching licenses..."))
	if err != nil {
		return err
	}

	for i, lic := range licenses {
		if i > 0 {
			output.Println("")
		}
		output.Print(formatLicense(lic))
	}
	return nil
}

// formatLicense renders a full license record for terminal output.
func formatLicense(lic *registry.License) string {
	var b strings.Builder

	label := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(output.StyleDim.Render(fmt.Sprintf("%-16s", name+":")))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(output.StyleSummary.Render(lic.Name))
	if lic.Featured {
		b.WriteString(" " + output.StyleFeatured.Render("(featured)"))
	}
	b.WriteString("\n")

	label("key", output.StyleNoun.Render(lic.Key))
	label("spdx", lic.SPDXID)
	label("url", lic.URL)
	label("html url", lic.HTMLURL)
	label("description", lic.Description)
	label("implementation", lic.Implementation)
	label("permissions", strings.Join(lic.Permissions, ", "))
	label("conditions", strings.Join(lic.Conditions, ", "))
	label("limitations", strings.Join(lic.Limitations, ", "))

	b.WriteString("\n")
	b.WriteString(lic.Body)
	if !strings.HasSuffix(lic.Body, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}
