// Package runner executes external commands such as git and package managers.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// Result is the outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs an external command and waits for it to finish.
// A non-nil error means the command could not be started or exited non-zero;
// the Result is populated in both cases.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Stdin, when set, is connected to the child so commands like sudo
	// can read a password.
	Stdin io.Reader
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}

	err := cmd.Run()

	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, err
	}

	return result, nil
}

// CommandLine renders name and args as a single display string.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
