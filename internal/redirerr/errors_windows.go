//go:build windows

package redirerr

import (
	"errors"

	"golang.org/x/sys/windows"
)

// ToNTStatus translates a redirector error into the NTSTATUS value the
// syscall boundary should return to its caller.
func ToNTStatus(err error) windows.NTStatus {
	if err == nil {
		return windows.STATUS_SUCCESS
	}

	var e *Error
	if !errors.As(err, &e) {
		return windows.STATUS_UNSUCCESSFUL
	}

	switch {
	case errors.Is(e.Err, ErrNotFound):
		return windows.STATUS_OBJECT_NAME_NOT_FOUND
	case errors.Is(e.Err, ErrDirectoryNeedsFallback):
		return windows.STATUS_OBJECT_NAME_NOT_FOUND
	case errors.Is(e.Err, ErrBufferTooSmall):
		return windows.STATUS_BUFFER_OVERFLOW
	case errors.Is(e.Err, ErrInternalInvariant):
		return windows.STATUS_SUCCESS
	default:
		return windows.STATUS_UNSUCCESSFUL
	}
}
