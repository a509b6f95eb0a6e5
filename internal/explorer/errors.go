package explorer

import "errors"

// Sentinel errors for filesystem navigation failures. All of them are
// recoverable: callers turn them into displayable messages, never a crash.
var (
	// ErrPathEscape means a resolved path landed outside the root boundary.
	ErrPathEscape = errors.New("path escapes the configured root")

	// ErrNotADirectory means a directory operation was attempted on a file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAccessDenied means the filesystem refused to read the path.
	ErrAccessDenied = errors.New("access denied")
)
