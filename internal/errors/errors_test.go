//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	all := []error{ErrUsage, ErrUnknownTemplate, ErrVCSMissing, ErrDestinationExists, ErrCloneFailed, ErrCancelled}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotEqual(t, all[i], all[j])
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "target directory already exists",
		Message:  "proj already exists",
		Location: "proj",
		Context:  map[string]string{"Template": "flask-datta-able"},
		Hint:     "Choose a different folder name",
	}

	out := detail.Error()
	assert.Contains(t, out, "Error: target directory already exists")
	assert.Contains(t, out, "Location: proj")
	assert.Contains(t, out, "Template: flask-datta-able")
	assert.Contains(t, out, "proj already exists")
	assert.Contains(t, out, "Hint: Choose a different folder name")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrCloneFailed}

	assert.True(t, errors.Is(detail, ErrCloneFailed))
	assert.Equal(t, ErrCloneFailed, detail.Unwrap())
}

func TestNewDestinationExistsError(t *testing.T) {
	err := NewDestinationExistsError("existing-dir")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDestinationExists))
	assert.Contains(t, err.Error(), "target directory already exists")

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "existing-dir", detail.Location)
}

func TestNewCloneFailedError(t *testing.T) {
	err := NewCloneFailedError("https://github.com/app-generator/x.git", "proj", "fatal: repository not found\n")

	assert.True(t, errors.Is(err, ErrCloneFailed))
	assert.Contains(t, err.Error(), "fatal: repository not found")
	assert.Contains(t, err.Error(), "Remove proj before retrying")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "explicit exit error", err: NewExitError(errors.New("boom"), 7), want: 7},
		{name: "usage", err: Wrap(ErrUsage, "unknown flag"), want: ExitUsageError},
		{name: "unknown template exits cleanly", err: ErrUnknownTemplate, want: ExitSuccess},
		{name: "cancelled exits cleanly", err: ErrCancelled, want: ExitSuccess},
		{name: "git missing", err: ErrVCSMissing, want: ExitDependencyError},
		{name: "destination exists", err: NewDestinationExistsError("proj"), want: ExitDestinationExists},
		{name: "clone failed", err: NewCloneFailedError("u", "d", ""), want: ExitGeneralError},
		{name: "unexpected", err: fmt.Errorf("wrapped: %w", errors.New("x")), want: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	exitErr := NewExitError(ErrUsage, ExitUsageError)

	assert.True(t, errors.Is(exitErr, ErrUsage))
	assert.Equal(t, "invalid arguments", exitErr.Error())
	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrVCSMissing, "installing git")

	assert.True(t, errors.Is(wrapped, ErrVCSMissing))
	assert.Contains(t, wrapped.Error(), "installing git")
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Usage Error", ExitCodeName(ExitUsageError))
	assert.Equal(t, "Dependency Missing", ExitCodeName(ExitDependencyError))
	assert.Equal(t, "Destination Exists", ExitCodeName(ExitDestinationExists))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
