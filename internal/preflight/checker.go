// Package preflight verifies that git is available before a project is created.
package preflight

import (
	"context"
	"fmt"
	"regexp"

	oerrors "github.com/appseed/cli/internal/errors"
	"github.com/appseed/cli/internal/output"
	"github.com/appseed/cli/internal/runner"
)

// TitleInstall is the confirmation asked when git is missing.
const TitleInstall = "Do you want to install git?"

var gitVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Confirmer asks a yes/no question.
type Confirmer interface {
	AskConfirm(ctx context.Context, title string, def bool) (bool, error)
}

// InstallCommand is the command line that installs git on a platform.
type InstallCommand struct {
	Name string
	Args []string
}

// String renders the command line.
func (c InstallCommand) String() string {
	return runner.CommandLine(c.Name, c.Args...)
}

// InstallCommandFor returns the package-manager command that installs git on goos.
func InstallCommandFor(goos string) InstallCommand {
	switch goos {
	case "darwin":
		return InstallCommand{Name: "brew", Args: []string{"install", "git"}}
	case "windows":
		return InstallCommand{Name: "winget", Args: []string{"install", "--id", "Git.Git", "-e"}}
	case "freebsd":
		return InstallCommand{Name: "sudo", Args: []string{"pkg", "install", "-y", "git"}}
	default:
		return InstallCommand{Name: "sudo", Args: []string{"apt", "install", "-y", "git"}}
	}
}

// Result describes what the check found and did.
type Result struct {
	// Available is true when git answered the version query.
	Available bool
	// Version is the parsed git version, if available.
	Version string
	// Installed is true when git was installed during the check.
	Installed bool
	// Declined is true when the user refused the install offer.
	Declined bool
}

// Checker looks for git and offers to install it.
type Checker struct {
	Runner    runner.Runner
	Confirmer Confirmer

	// Git is the git binary. Defaults to "git".
	Git string

	// Install is the command used to install git.
	Install InstallCommand

	// Unattended skips the install offer. Missing git is reported as declined.
	Unattended bool
}

// Check runs `git --version`. When that fails it offers to install git.
// A failed install returns ErrVCSMissing. Declining is not an error,
// and an unattended check never installs.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	log := output.StepLogger("preflight")

	git := c.Git
	if git == "" {
		git = "git"
	}

	res, err := c.Runner.Run(ctx, git, "--version")
	if err == nil {
		version := gitVersionRegex.FindString(res.Stdout)
		log.Debug("git found", "version", version)
		return Result{Available: true, Version: version}, nil
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	log.Warn("git is not installed, please install it and try again")

	if c.Unattended {
		log.Warn("no terminal attached, not installing git", "command", c.Install.String())
		return Result{Declined: true}, nil
	}

	install, err := c.Confirmer.AskConfirm(ctx, TitleInstall, true)
	if err != nil {
		return Result{}, err
	}
	if !install {
		log.Debug("git install declined")
		return Result{Declined: true}, nil
	}

	log.Info("installing git", "command", c.Install.String())
	res, err = c.Runner.Run(ctx, c.Install.Name, c.Install.Args...)
	if err != nil {
		return Result{}, &oerrors.DetailError{
			Type:    "failed to install git",
			Message: fmt.Sprintf("%s exited with code %d", c.Install, res.ExitCode),
			Context: map[string]string{"stderr": res.Stderr},
			Hint:    "Install git manually and run appseed again.",
			Cause:   oerrors.ErrVCSMissing,
		}
	}

	log.Info(output.FormatCheckmark("git installed successfully"))
	return Result{Available: true, Installed: true}, nil
}
