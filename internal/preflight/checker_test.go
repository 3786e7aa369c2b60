package preflight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/appseed/cli/internal/errors"
	"github.com/appseed/cli/internal/runner"
	"github.com/appseed/cli/internal/testutil"
)

func newChecker(r *testutil.FakeRunner, p *testutil.FakePrompter) *Checker {
	return &Checker{
		Runner:    r,
		Confirmer: p,
		Install:   InstallCommandFor("linux"),
	}
}

func TestCheck_GitAvailable(t *testing.T) {
	r := testutil.NewFakeRunner().On("git --version", testutil.FakeResponse{
		Result: runner.Result{Stdout: "git version 2.43.0"},
	})
	p := testutil.NewFakePrompter()

	res, err := newChecker(r, p).Check(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, "2.43.0", res.Version)
	assert.Len(t, r.Calls, 1)
	assert.Empty(t, p.Asked)
}

func TestCheck_CustomGitBinary(t *testing.T) {
	r := testutil.NewFakeRunner()
	c := newChecker(r, testutil.NewFakePrompter())
	c.Git = "/usr/local/bin/git"

	_, err := c.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/git --version", r.Calls[0].String())
}

func TestCheck_MissingInstallSucceeds(t *testing.T) {
	r := testutil.NewFakeRunner().Fail("git --version", "executable file not found")
	p := testutil.NewFakePrompter()

	res, err := newChecker(r, p).Check(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Installed)
	assert.Equal(t, []string{TitleInstall}, p.Asked)
	require.Len(t, r.CallsTo("sudo apt install"), 1)
	assert.Equal(t, "sudo apt install -y git", r.CallsTo("sudo")[0].String())
}

func TestCheck_MissingInstallFails(t *testing.T) {
	r := testutil.NewFakeRunner().
		Fail("git --version", "not found").
		Fail("sudo apt install", "E: Unable to locate package git")
	p := testutil.NewFakePrompter()

	_, err := newChecker(r, p).Check(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrVCSMissing))
	assert.Equal(t, oerrors.ExitDependencyError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "Unable to locate package git")
}

func TestCheck_MissingDeclined(t *testing.T) {
	r := testutil.NewFakeRunner().Fail("git --version", "not found")
	p := testutil.NewFakePrompter()
	p.Confirm[TitleInstall] = false

	res, err := newChecker(r, p).Check(context.Background())

	require.NoError(t, err, "declining continues the run")
	assert.True(t, res.Declined)
	assert.False(t, res.Available)
	assert.Empty(t, r.CallsTo("sudo"))
}

func TestCheck_UnattendedNeverInstalls(t *testing.T) {
	r := testutil.NewFakeRunner().Fail("git --version", "not found")
	p := testutil.NewFakePrompter()
	c := newChecker(r, p)
	c.Unattended = true

	res, err := c.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Declined)
	assert.Empty(t, p.Asked, "no install question without a user")
	assert.Empty(t, r.CallsTo("sudo"))
	assert.Len(t, r.Calls, 1)
}

func TestCheck_UnattendedWithGitAvailable(t *testing.T) {
	r := testutil.NewFakeRunner()
	c := newChecker(r, testutil.NewFakePrompter())
	c.Unattended = true

	res, err := c.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheck_PromptCancelled(t *testing.T) {
	r := testutil.NewFakeRunner().Fail("git --version", "not found")
	p := testutil.NewFakePrompter()
	p.Err = oerrors.ErrCancelled

	_, err := newChecker(r, p).Check(context.Background())
	assert.ErrorIs(t, err, oerrors.ErrCancelled)
}

func TestInstallCommandFor(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "sudo apt install -y git"},
		{"darwin", "brew install git"},
		{"windows", "winget install --id Git.Git -e"},
		{"freebsd", "sudo pkg install -y git"},
		{"plan9", "sudo apt install -y git"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, InstallCommandFor(tt.goos).String())
		})
	}
}
