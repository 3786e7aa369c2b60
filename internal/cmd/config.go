package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appseed/cli/internal/config"
	oerrors "github.com/appseed/cli/internal/errors"
	"github.com/appseed/cli/internal/output"
)

// NewConfigCmd creates the config command group.
// configFlag points at the root command's --config value.
func NewConfigCmd(configFlag *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage appseed configuration",
		Long: `Manage the appseed configuration file (~/.appseed/config.yaml).

Every key can also be set with an APPSEED_ environment variable,
for example APPSEED_ORG or APPSEED_DEFAULTS_FOLDERNAME.`,
	}

	c.AddCommand(newConfigInitCmd(configFlag))
	c.AddCommand(newConfigViewCmd(configFlag))

	return c
}

func resolveConfigPath(configFlag *string) (string, error) {
	path := ""
	if configFlag != nil {
		path = *configFlag
	}
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", oerrors.Wrap(oerrors.ErrUsage, "could not determine home directory")
		}
	}
	return config.ExpandPath(path)
}

func newConfigInitCmd(configFlag *string) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default appseed configuration.

Creates ~/.appseed/config.yaml (or the --config path) containing the
template host, organization, git binary and prompt defaults.

Examples:
  # Initialize configuration
  appseed config init

  # Overwrite existing configuration
  appseed config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(configFlag)
			if err != nil {
				return toExitError(err)
			}

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitGeneralError)
			}
			if exists && !force {
				return oerrors.NewExitError(&oerrors.DetailError{
					Type:     "configuration already exists",
					Message:  "refusing to overwrite the existing configuration",
					Location: path,
					Hint:     "Use --force to overwrite existing configuration.",
					Cause:    oerrors.ErrDestinationExists,
				}, oerrors.ExitGeneralError)
			}

			if err := config.Write(path, config.DefaultConfig()); err != nil {
				return oerrors.NewExitError(err, oerrors.ExitGeneralError)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func newConfigViewCmd(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging the file, environment
variables and built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := ""
			if configFlag != nil {
				path = *configFlag
			}
			cfg, err := config.NewLoader().Load(path)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitGeneralError)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
