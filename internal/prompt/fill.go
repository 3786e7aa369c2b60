package prompt

import (
	"context"
	"fmt"

	"github.com/appseed/cli/internal/config"
	oerrors "github.com/appseed/cli/internal/errors"
	"github.com/appseed/cli/internal/project"
	"github.com/appseed/cli/internal/templates"
)

// Question titles.
const (
	TitleDocker     = "Confirm that you want to use Docker?"
	TitleFolderName = "Enter a folder name for your project:"
	TitleTemplate   = "Which project template would you like to use?"
)

// Defaults are the preselected answers.
type Defaults struct {
	Template   string
	FolderName string
}

// Fill asks for every field missing from opts and returns the completed options.
//
// A template outside the allow-list returns ErrUnknownTemplate before any
// question is asked. Declining the docker confirmation clears UseDocker.
func Fill(ctx context.Context, p Prompter, opts project.Options, defaults Defaults) (project.Options, error) {
	if opts.Template != "" && !templates.IsValid(opts.Template) {
		return opts, fmt.Errorf("template %q: %w", opts.Template, oerrors.ErrUnknownTemplate)
	}

	if defaults.Template == "" || !templates.IsValid(defaults.Template) {
		defaults.Template = templates.Default().ID
	}
	if defaults.FolderName == "" {
		defaults.FolderName = config.DefaultFolderName
	}

	if opts.UseDocker {
		confirmed, err := p.AskConfirm(ctx, TitleDocker, opts.UseDocker)
		if err != nil {
			return opts, err
		}
		opts.UseDocker = confirmed
	}

	var answers project.Options

	if opts.FolderName == "" {
		name, err := p.AskInput(ctx, TitleFolderName, defaults.FolderName, project.ValidateFolderName)
		if err != nil {
			return opts, err
		}
		answers.FolderName = name
	}

	if opts.Template == "" {
		id, err := p.AskSelect(ctx, TitleTemplate, templates.IDs(), defaults.Template)
		if err != nil {
			return opts, err
		}
		answers.Template = id
	}

	return opts.Merge(answers), nil
}

// TemplateLabels returns select labels for the template picker.
func TemplateLabels() map[string]string {
	labels := make(map[string]string)
	for _, t := range templates.List() {
		labels[t.ID] = t.Description
	}
	return labels
}
