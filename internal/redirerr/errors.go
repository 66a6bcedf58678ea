// Package redirerr implements the error taxonomy the core uses at its
// syscall boundary: every hook converts its worst case into "call the
// original syscall unchanged" rather than propagating a Go error across
// that boundary.
package redirerr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the path does not match any redirect. Not an error
	// externally — the normal outcome, a fast return to the original syscall.
	ErrNotFound = errors.New("path does not match any redirect")

	// ErrUnderlyingNative means the original syscall returned a non-success
	// status that must be propagated verbatim.
	ErrUnderlyingNative = errors.New("underlying syscall returned non-success status")

	// ErrDirectoryNeedsFallback means a directory handle's original lookup
	// returned STATUS_OBJECT_NAME_NOT_FOUND and the redirected path should
	// be retried, since the directory may only exist inside an overlay.
	ErrDirectoryNeedsFallback = errors.New("directory only exists in overlay, retry with redirected path")

	// ErrBufferTooSmall means enumeration splicing ran out of caller buffer
	// space; the merger stops injecting and records the pending index.
	ErrBufferTooSmall = errors.New("insufficient buffer space to inject overlay entries")

	// ErrInternalInvariant marks an assertion failure. In release builds the
	// caller falls back to the original syscall without redirection rather
	// than crashing the host process.
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// Common operation names for consistent logging and error reporting.
const (
	OpRedirectFile   = "redirect_file"
	OpRedirectFolder = "redirect_folder"
	OpEnumerate      = "enumerate"
	OpCompile        = "compile"
)

// Error wraps a taxonomy error with the operation and path involved, mirroring
// the teacher's *fs.Error{Op, Path, Err}.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("operation %s on %s failed: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the operation and path it occurred under.
func New(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}
