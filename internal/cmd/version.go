package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appseed/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var asYAML bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show appseed CLI version information.

Displays:
  - appseed version, commit, and build date
  - Go version and platform of the binary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if asYAML {
				data, err := yaml.Marshal(info)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}

	c.Flags().BoolVar(&asYAML, "yaml", false, "Print version information as YAML")

	return c
}
