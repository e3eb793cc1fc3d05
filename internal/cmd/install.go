package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/licensor/cli/internal/identity"
	"github.com/licensor/cli/internal/license"
	"github.com/licensor/cli/internal/output"
	"github.com/licensor/cli/internal/registry"
)

// NewInstallCmd creates the install command.
func NewInstallCmd(gc *GlobalConfig) *cobra.Command {
	var (
		pathFlag    string
		authorFlag  string
		yearFlag    string
		companyFlag string
		projectFlag string
		baseFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "install <key>",
		Short: "Install a license into a local file",
		Long: `Fetch a license by key and write it to a local file, replacing
known placeholder tokens with the author, year, and project values.

Defaults when flags are omitted:
  author  git config user.name, else the OS user
  year    "<current year>-present"
  path    ./LICENSE

Examples:
  # Install the MIT license with resolved defaults
  licensor install mit

  # Pin the copyright line
  licensor install mit --author "Jane Doe" --year 2020-present

  # GPL family fills the program name too
  licensor install gpl-3.0 --project MyTool

  # Write the registry text verbatim, placeholders untouched
  licensor install apache-2.0 --base`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, gc, license.Request{
				Key:     args[0],
				Path:    pathFlag,
				Author:  authorFlag,
				Year:    yearFlag,
				Company: companyFlag,
				Project: projectFlag,
				Raw:     baseFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Destination file (default ./LICENSE)")
	cmd.Flags().StringVarP(&authorFlag, "author", "a", "", "Author name for copyright placeholders")
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "", "Copyright year (default \"<current year>-present\")")
	cmd.Flags().StringVarP(&companyFlag, "company", "c", "", "Company name")
	cmd.Flags().StringVar(&projectFlag, "project", "", "Project name (GPL family <program> token)")
	cmd.Flags().BoolVarP(&baseFlag, "base", "b", false, "Write the raw license text without substitution")

	// --base bypasses substitution entirely; value flags make no sense with it
	cmd.MarkFlagsMutuallyExclusive("base", "author")
	cmd.MarkFlagsMutuallyExclusive("base", "year")
	cmd.MarkFlagsMutuallyExclusive("base", "company")
	cmd.MarkFlagsMutuallyExclusive("base", "project")

	return cmd
}

func runInstall(cmd *cobra.Command, gc *GlobalConfig, req license.Request) error {
	// Author precedence: --author flag, then env/config override, then
	// the identity chain inside the installer.
	if req.Author == "" {
		req.Author = gc.Author.Value
	}

	installer := &license.Installer{
		Registry: registry.NewClient(gc.Endpoint.Value),
		Identity: identity.Default(),
	}

	var res *license.Result
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var installErr error
		res, installErr = installer.Install(cmd.Context(), req)
		return installErr
	}, output.WithTitle(fmt.Sprintf("Installing %s...", req.Key)))
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote %s to %s",
		res.Name, output.StyleNoun.Render(res.Path))))

	if req.Raw {
		output.Debug("raw mode: placeholders left untouched", "key", req.Key)
	} else if !res.Substituted {
		output.Debug("no placeholder family for key, body written unmodified", "key", req.Key)
	}

	return nil
}
