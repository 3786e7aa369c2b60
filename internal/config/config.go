// Package config provides configuration loading and management.
package config

import (
	"github.com/appseed/cli/internal/templates"
)

// DefaultFolderName is offered when --folder-name is omitted.
const DefaultFolderName = "my-project"

// DefaultGitBinary is the version-control client invoked for checks and clones.
const DefaultGitBinary = "git"

// DefaultsConfig holds the values the prompter preselects.
type DefaultsConfig struct {
	// Template is preselected in the template picker.
	Template string `mapstructure:"template" yaml:"template"`

	// FolderName is the default answer for the folder name prompt.
	FolderName string `mapstructure:"folderName" yaml:"folderName"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the appseed CLI configuration.
// Loaded from ~/.appseed/config.yaml.
type Config struct {
	// Host is the git host templates are cloned from.
	// Env: APPSEED_HOST
	Host string `mapstructure:"host" yaml:"host"`

	// Org is the organization owning the template repositories.
	// Env: APPSEED_ORG
	Org string `mapstructure:"org" yaml:"org"`

	// Git is the git binary name or path.
	// Env: APPSEED_GIT
	Git string `mapstructure:"git" yaml:"git"`

	// Defaults holds prompt defaults.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `appseed config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Host: templates.DefaultHost,
		Org:  templates.DefaultOrg,
		Git:  DefaultGitBinary,
		Defaults: DefaultsConfig{
			Template:   templates.Default().ID,
			FolderName: DefaultFolderName,
		},
	}
}

// WithDefaults returns a copy of c with empty fields filled from DefaultConfig.
// A configured default template outside the allow-list is replaced.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	if out.Host == "" {
		out.Host = d.Host
	}
	if out.Org == "" {
		out.Org = d.Org
	}
	if out.Git == "" {
		out.Git = d.Git
	}
	if !templates.IsValid(out.Defaults.Template) {
		out.Defaults.Template = d.Defaults.Template
	}
	if out.Defaults.FolderName == "" {
		out.Defaults.FolderName = d.Defaults.FolderName
	}
	return &out
}
