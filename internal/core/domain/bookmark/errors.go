package bookmark

import "errors"

// Error categories shared across services and adapters. Callers match them
// with errors.Is; every layer adds context with fmt.Errorf wrapping.
var (
	// ErrInvalidPath is returned at add time when the supplied path does
	// not exist or is not a directory.
	ErrInvalidPath = errors.New("path does not exist or is not a directory")

	// ErrUnknownAlias is returned when an operation references an alias
	// that has no entry in the store.
	ErrUnknownAlias = errors.New("unknown alias")

	// ErrStalePath is returned at go time when a bookmark's stored path is
	// no longer a directory on disk. The bookmark itself is left untouched.
	ErrStalePath = errors.New("bookmarked path no longer exists")

	// ErrMultiplexer is returned when a tmux query, create, or attach call
	// fails.
	ErrMultiplexer = errors.New("multiplexer command failed")
)
