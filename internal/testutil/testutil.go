// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appseed/cli/internal/runner"
)

// Call records one invocation made through FakeRunner.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return runner.CommandLine(c.Name, c.Args...)
}

// FakeRunner records commands instead of executing them.
// Responses are looked up by command line prefix; unmatched commands succeed.
type FakeRunner struct {
	Calls     []Call
	Responses map[string]FakeResponse
}

// FakeResponse is the canned outcome for a command.
type FakeResponse struct {
	Result runner.Result
	Err    error
	// Effect runs before the response is returned, e.g. to create files.
	Effect func(args []string)
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: map[string]FakeResponse{}}
}

// On registers a response for commands whose command line starts with prefix.
func (f *FakeRunner) On(prefix string, resp FakeResponse) *FakeRunner {
	f.Responses[prefix] = resp
	return f
}

// Fail registers a non-zero exit with the given stderr for prefix.
func (f *FakeRunner) Fail(prefix, stderr string) *FakeRunner {
	return f.On(prefix, FakeResponse{
		Result: runner.Result{Stderr: stderr, ExitCode: 1},
		Err:    fmt.Errorf("exit status 1"),
	})
}

// Run implements runner.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (runner.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)

	line := call.String()
	best := ""
	for prefix := range f.Responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return runner.Result{}, nil
	}

	resp := f.Responses[best]
	if resp.Effect != nil {
		resp.Effect(args)
	}
	return resp.Result, resp.Err
}

// CallsTo returns the recorded calls whose command line starts with prefix.
func (f *FakeRunner) CallsTo(prefix string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// FakePrompter answers prompts from canned values and records the titles asked.
// Unanswered prompts return their default.
type FakePrompter struct {
	Asked   []string
	Confirm map[string]bool
	Input   map[string]string
	Select  map[string]string
	Err     error
}

// NewFakePrompter returns a FakePrompter with empty answer sets.
func NewFakePrompter() *FakePrompter {
	return &FakePrompter{
		Confirm: map[string]bool{},
		Input:   map[string]string{},
		Select:  map[string]string{},
	}
}

// AskConfirm implements prompt.Prompter.
func (f *FakePrompter) AskConfirm(_ context.Context, title string, def bool) (bool, error) {
	f.Asked = append(f.Asked, title)
	if f.Err != nil {
		return false, f.Err
	}
	if v, ok := f.Confirm[title]; ok {
		return v, nil
	}
	return def, nil
}

// AskInput implements prompt.Prompter.
func (f *FakePrompter) AskInput(_ context.Context, title, def string, validate func(string) error) (string, error) {
	f.Asked = append(f.Asked, title)
	if f.Err != nil {
		return "", f.Err
	}
	v, ok := f.Input[title]
	if !ok || v == "" {
		v = def
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

// AskSelect implements prompt.Prompter.
func (f *FakePrompter) AskSelect(_ context.Context, title string, options []string, def string) (string, error) {
	f.Asked = append(f.Asked, title)
	if f.Err != nil {
		return "", f.Err
	}
	if v, ok := f.Select[title]; ok {
		return v, nil
	}
	if def == "" && len(options) > 0 {
		return options[0], nil
	}
	return def, nil
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
