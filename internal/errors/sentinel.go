package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates malformed command-line arguments.
	ErrUsage = errors.New("invalid arguments")

	// ErrUnknownTemplate indicates a template id outside the allow-list.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrVCSMissing indicates git is unavailable and could not be installed.
	ErrVCSMissing = errors.New("git not available")

	// ErrDestinationExists indicates the target folder is already on disk.
	ErrDestinationExists = errors.New("target directory already exists")

	// ErrCloneFailed indicates the clone subprocess exited non-successfully.
	ErrCloneFailed = errors.New("failed to download template")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled by user")
)
