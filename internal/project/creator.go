package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/appseed/cli/internal/errors"
	"github.com/appseed/cli/internal/output"
	"github.com/appseed/cli/internal/runner"
	"github.com/appseed/cli/internal/templates"
)

// gitDestinationExists is the fragment git prints when the clone target is in use.
const gitDestinationExists = "already exists and is not an empty directory"

// Creator clones a template repository into a new folder.
type Creator struct {
	// Runner executes git. It must run commands in WorkDir.
	Runner runner.Runner

	// Git is the git binary. Defaults to "git".
	Git string

	// Host and Org locate the template repositories.
	Host string
	Org  string

	// WorkDir is the directory the folder is created in. Defaults to the current directory.
	WorkDir string

	// Out receives the confirmation line.
	Out io.Writer
}

// Create makes opts.FolderName and clones opts.Template into it.
//
// The folder is created with a fail-if-exists mkdir before git runs, so an
// existing destination is rejected without touching the network. A failed
// clone leaves the folder in place.
func (c *Creator) Create(ctx context.Context, opts Options) error {
	log := output.StepLogger("clone")

	if !opts.Complete() {
		return fmt.Errorf("incomplete options: template=%q folder=%q", opts.Template, opts.FolderName)
	}
	if _, err := templates.Get(opts.Template); err != nil {
		return oerrors.Wrap(oerrors.ErrUnknownTemplate, err.Error())
	}
	if err := ValidateFolderName(opts.FolderName); err != nil {
		return oerrors.Wrap(oerrors.ErrUsage, err.Error())
	}

	url := templates.RepositoryURL(c.Host, c.Org, opts.Template)
	dest := filepath.Join(c.workDir(), opts.FolderName)

	log.Debug("starting the download process", "url", url, "dest", dest)

	if err := os.Mkdir(dest, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return oerrors.NewDestinationExistsError(opts.FolderName)
		}
		return fmt.Errorf("creating %s: %w", opts.FolderName, err)
	}

	git := c.Git
	if git == "" {
		git = "git"
	}

	var res runner.Result
	err := output.RunWithSpinner(ctx, func() error {
		var runErr error
		res, runErr = c.Runner.Run(ctx, git, "clone", "--", url, opts.FolderName)
		return runErr
	}, output.WithTitle("Downloading template files..."))
	if err != nil {
		if strings.Contains(res.Stderr, gitDestinationExists) {
			return oerrors.NewDestinationExistsError(opts.FolderName)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Debug("clone failed", "exit", res.ExitCode, "error", err)
		return oerrors.NewCloneFailedError(url, opts.FolderName, res.Stderr)
	}

	if c.Out != nil {
		fmt.Fprintln(c.Out, output.FormatDone("Project ready!"))
	}
	return nil
}

func (c *Creator) workDir() string {
	if c.WorkDir != "" {
		return c.WorkDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
