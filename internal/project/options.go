// Package project holds the options that flow through a scaffolding run
// and creates the project directory from a template repository.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// Options are the user's choices for one invocation.
// Empty strings mean "not supplied yet".
type Options struct {
	Template   string
	FolderName string
	UseDocker  bool
}

// Complete reports whether every field the creator needs is set.
func (o Options) Complete() bool {
	return o.Template != "" && o.FolderName != ""
}

// Merge returns o with empty fields filled from answers.
// Values already present in o win.
func (o Options) Merge(answers Options) Options {
	out := o
	if out.Template == "" {
		out.Template = answers.Template
	}
	if out.FolderName == "" {
		out.FolderName = answers.FolderName
	}
	return out
}

// ValidateFolderName checks that name is usable as a single path segment.
func ValidateFolderName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return errors.New("folder name must not be empty")
	case trimmed != name:
		return errors.New("folder name must not start or end with whitespace")
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("folder name %q must not start with '-'", name)
	case name == "." || name == "..":
		return fmt.Errorf("folder name %q is not allowed", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("folder name %q must not contain path separators", name)
	case strings.ContainsAny(name, "\x00:*?\"<>|"):
		return fmt.Errorf("folder name %q contains invalid characters", name)
	}
	return nil
}
