// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/appseed/cli/internal/advisor"
	"github.com/appseed/cli/internal/config"
	oerrors "github.com/appseed/cli/internal/errors"
	"github.com/appseed/cli/internal/output"
	"github.com/appseed/cli/internal/preflight"
	"github.com/appseed/cli/internal/project"
	"github.com/appseed/cli/internal/prompt"
	"github.com/appseed/cli/internal/runner"
)

// Deps are the collaborators the root command talks to.
// Zero values select the real implementations.
type Deps struct {
	// Runner executes git and the installer. Default: ExecRunner in WorkDir.
	Runner runner.Runner

	// Prompter asks questions. Default: huh on a terminal, defaults otherwise.
	Prompter prompt.Prompter

	// Platform selects install commands and advice. Default: the host.
	Platform advisor.Platform

	// WorkDir is where the project folder is created. Default: the current directory.
	WorkDir string
}

type rootFlags struct {
	template   string
	folderName string
	docker     bool
	list       bool
	verbose    bool
	config     string
	timestamps bool
}

// app holds per-invocation state shared between the root command's hooks.
type app struct {
	deps  Deps
	flags rootFlags
	cfg   *config.Config
}

// NewRootCmd creates the root command for the appseed CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command with the given collaborators.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "appseed",
		Short: "Create a project from an app-generator template",
		Long: heredoc.Doc(`
			appseed clones a ready-made Flask or Django starter into a new folder
			and prints the commands to run it.

			Any option not given on the command line is asked for interactively.
			Without a terminal the defaults are used.
		`),
		Example: heredoc.Doc(`
			# Pick everything interactively
			appseed

			# Fully specified
			appseed -t flask-datta-able -n my-project

			# Run the project with docker-compose afterwards
			appseed -t django-volt-dashboard -n shop --docker

			# Show the available templates
			appseed --list
		`),
		Args:          a.noPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&a.flags.template, "template", "t", "", "Template to use for the project")
	f.StringVarP(&a.flags.folderName, "folder-name", "n", "", "Name of the folder to create")
	f.BoolVarP(&a.flags.docker, "docker", "d", false, "Use Docker for the project")
	f.BoolVarP(&a.flags.list, "list", "l", false, "Print the list of available templates")

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVarP(&a.flags.config, "config", "c", "", "Path to config file (env: APPSEED_CONFIG)")
	pf.BoolVar(&a.flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewConfigCmd(&a.flags.config))

	return rootCmd
}

// usageError prints help to stdout and turns err into a usage exit.
func usageError(cmd *cobra.Command, err error) error {
	_ = cmd.Help()
	return oerrors.NewExitError(oerrors.Wrap(oerrors.ErrUsage, err.Error()), oerrors.ExitUsageError)
}

func (a *app) noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(cmd, fmt.Errorf("unexpected argument %q", args[0]))
	}
	return nil
}

// initializeGlobals loads configuration and sets up logging.
func (a *app) initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(a.flags.config)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	a.cfg = cfg

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: a.flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(a.flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", a.flags.config,
		"host", cfg.Host,
		"org", cfg.Org,
		"git", cfg.Git,
	)
	return nil
}

func (a *app) run(cmd *cobra.Command) error {
	if a.flags.list {
		return printTemplateList(cmd.OutOrStdout())
	}

	ctx := cmd.Context()
	cfg := a.cfg.WithDefaults()
	platform := a.platform()
	prompter := a.prompter()
	run := a.runner()

	checker := &preflight.Checker{
		Runner:     run,
		Confirmer:  prompter,
		Git:        cfg.Git,
		Install:    preflight.InstallCommandFor(platform.OS),
		Unattended: prompt.IsHeadless(prompter),
	}
	if _, err := checker.Check(ctx); err != nil {
		return toExitError(err)
	}

	opts := project.Options{
		Template:   a.flags.template,
		FolderName: a.flags.folderName,
		UseDocker:  a.flags.docker,
	}
	opts, err := prompt.Fill(ctx, prompter, opts, prompt.Defaults{
		Template:   cfg.Defaults.Template,
		FolderName: cfg.Defaults.FolderName,
	})
	switch {
	case errors.Is(err, oerrors.ErrUnknownTemplate):
		output.Warn("Template not found, if you are not sure, remove the -t flag", "template", a.flags.template)
		return nil
	case errors.Is(err, oerrors.ErrCancelled):
		output.Warn("aborted")
		return nil
	case err != nil:
		return toExitError(err)
	}

	output.Debug("options resolved",
		"template", opts.Template,
		"folder", opts.FolderName,
		"docker", opts.UseDocker,
	)

	creator := &project.Creator{
		Runner:  run,
		Git:     cfg.Git,
		Host:    cfg.Host,
		Org:     cfg.Org,
		WorkDir: a.workDir(),
		Out:     cmd.OutOrStdout(),
	}
	if err := creator.Create(ctx, opts); err != nil {
		return toExitError(err)
	}

	fmt.Fprint(cmd.OutOrStdout(), advisor.Advise(opts, platform))
	return nil
}

func (a *app) platform() advisor.Platform {
	if a.deps.Platform.OS != "" {
		return a.deps.Platform
	}
	return advisor.Current()
}

func (a *app) prompter() prompt.Prompter {
	if a.deps.Prompter != nil {
		return a.deps.Prompter
	}
	if output.IsInteractive() {
		return &prompt.HuhPrompter{Labels: prompt.TemplateLabels()}
	}
	output.Debug("no terminal attached, using defaults for missing options")
	return prompt.HeadlessPrompter{}
}

func (a *app) runner() runner.Runner {
	if a.deps.Runner != nil {
		return a.deps.Runner
	}
	return &runner.ExecRunner{Dir: a.workDir(), Stdin: os.Stdin}
}

func (a *app) workDir() string {
	if a.deps.WorkDir != "" {
		return a.deps.WorkDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// toExitError attaches the exit code for err.
func toExitError(err error) error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", oerrors.ExitCodeName(code))
	return oerrors.NewExitError(err, code)
}
