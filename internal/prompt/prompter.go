// Package prompt asks the user for any project options not given on the command line.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/appseed/cli/internal/errors"
)

// Prompter asks single questions and returns typed answers.
type Prompter interface {
	// AskConfirm asks a yes/no question.
	AskConfirm(ctx context.Context, title string, def bool) (bool, error)

	// AskInput asks for free text. An empty answer becomes def.
	AskInput(ctx context.Context, title, def string, validate func(string) error) (string, error)

	// AskSelect asks for one of options.
	AskSelect(ctx context.Context, title string, options []string, def string) (string, error)
}

// Compile-time interface compliance checks.
var (
	_ Prompter = (*HuhPrompter)(nil)
	_ Prompter = HeadlessPrompter{}
)

// HuhPrompter renders prompts in the terminal with huh.
// Each question runs as its own form.
type HuhPrompter struct {
	// Labels maps select option values to display labels. Optional.
	Labels map[string]string

	// Accessible switches huh to its plain-text accessible mode.
	Accessible bool
}

// AskConfirm implements Prompter.
func (p *HuhPrompter) AskConfirm(ctx context.Context, title string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

// AskInput implements Prompter.
func (p *HuhPrompter) AskInput(ctx context.Context, title, def string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(&value).
		Validate(func(s string) error {
			if s == "" {
				s = def
			}
			if validate != nil {
				return validate(s)
			}
			return nil
		})

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	if value == "" {
		value = def
	}
	return value, nil
}

// AskSelect implements Prompter.
func (p *HuhPrompter) AskSelect(ctx context.Context, title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("select prompt needs at least one option")
	}

	opts := make([]huh.Option[string], len(options))
	for i, v := range options {
		label := v
		if l, ok := p.Labels[v]; ok && l != "" {
			label = v + " - " + l
		}
		opts[i] = huh.NewOption(label, v).Selected(v == def)
	}

	value := def
	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&value)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.Accessible).
		WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return oerrors.ErrCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

// HeadlessPrompter answers every question with its default.
// It is used when no terminal is attached.
type HeadlessPrompter struct{}

// IsHeadless reports whether p answers without a user.
func IsHeadless(p Prompter) bool {
	switch p.(type) {
	case HeadlessPrompter, *HeadlessPrompter:
		return true
	}
	return false
}

// AskConfirm implements Prompter.
func (HeadlessPrompter) AskConfirm(_ context.Context, _ string, def bool) (bool, error) {
	return def, nil
}

// AskInput implements Prompter.
func (HeadlessPrompter) AskInput(_ context.Context, _ string, def string, validate func(string) error) (string, error) {
	if validate != nil {
		if err := validate(def); err != nil {
			return "", err
		}
	}
	return def, nil
}

// AskSelect implements Prompter.
func (HeadlessPrompter) AskSelect(_ context.Context, _ string, options []string, def string) (string, error) {
	if def != "" {
		return def, nil
	}
	if len(options) == 0 {
		return "", errors.New("select prompt needs at least one option")
	}
	return options[0], nil
}
