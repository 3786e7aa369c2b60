package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while a titled spinner is displayed.
// Returns the action's error if any, and only after the action has returned.
// Without a terminal the action runs directly.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if !IsTTY() {
		Debug(cfg.title)
		return action()
	}

	return runAlongside(ctx, action, func(wait func()) error {
		return spinner.New().Title(cfg.title).Action(wait).Run()
	})
}

// runAlongside runs action in a goroutine while display renders progress.
// display receives a wait func that blocks until the action returns or ctx
// ends. display may return early, for example on an interrupt, but
// runAlongside always waits for the action before returning.
func runAlongside(ctx context.Context, action func() error, display func(wait func()) error) error {
	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		errCh <- action()
	}()

	displayErr := display(func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
	})

	actionErr := <-errCh
	if actionErr != nil {
		return actionErr
	}
	if displayErr != nil {
		return fmt.Errorf("spinner error: %w", displayErr)
	}
	return nil
}
