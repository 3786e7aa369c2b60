// Package errors provides sentinel errors and exit-code plumbing for the appseed CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes returned by the appseed binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0
	// ExitGeneralError indicates an unspecified error, including a failed clone.
	ExitGeneralError = 1
	// ExitUsageError indicates malformed flags or arguments.
	ExitUsageError = 2
	// ExitDependencyError indicates git is missing and was not installed.
	ExitDependencyError = 3
	// ExitDestinationExists indicates the target folder already exists.
	ExitDestinationExists = 4
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string
	// Message is the specific description (required).
	Message string
	// Location is a path related to the failure (optional).
	Location string
	// Context contains additional key-value context (optional).
	Context map[string]string
	// Hint provides actionable guidance (optional).
	Hint string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with the process exit code it should produce.
type ExitError struct {
	// Err is the underlying error.
	Err error
	// Code is the process exit code.
	Code int
	// Printed is set when the command layer already showed the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUnknownTemplate), errors.Is(err, ErrCancelled):
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrVCSMissing):
		return ExitDependencyError
	case errors.Is(err, ErrDestinationExists):
		return ExitDestinationExists
	default:
		return ExitGeneralError
	}
}

// NewDestinationExistsError reports a target folder that is already on disk.
func NewDestinationExistsError(dir string) error {
	return &DetailError{
		Type:     "target directory already exists",
		Message:  fmt.Sprintf("%s already exists", dir),
		Location: dir,
		Hint:     "Choose a different folder name with -n or remove the existing directory.",
		Cause:    ErrDestinationExists,
	}
}

// NewCloneFailedError reports a clone subprocess failure.
func NewCloneFailedError(url, dir, stderr string) error {
	msg := fmt.Sprintf("git clone %s exited with an error", url)
	if stderr != "" {
		msg += ":\n  " + strings.ReplaceAll(strings.TrimSpace(stderr), "\n", "\n  ")
	}
	return &DetailError{
		Type:     "failed to download template",
		Message:  msg,
		Location: dir,
		Hint:     fmt.Sprintf("Remove %s before retrying.", dir),
		Cause:    ErrCloneFailed,
	}
}

// Wrap wraps a sentinel error with a message.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUsageError:
		return "Usage Error"
	case ExitDependencyError:
		return "Dependency Missing"
	case ExitDestinationExists:
		return "Destination Exists"
	default:
		return "Unknown"
	}
}
