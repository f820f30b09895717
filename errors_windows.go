//go:build windows

package fs2

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// classify maps a native Windows error code to the matching sentinel, or nil
// for failures outside the taxonomy.
func classify(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return nil
	}
	switch errno {
	case windows.ERROR_LOCK_VIOLATION:
		return ErrWouldBlock
	case windows.ERROR_ACCESS_DENIED:
		return ErrAccessDenied
	case windows.ERROR_INVALID_FUNCTION, windows.ERROR_NOT_SUPPORTED:
		return ErrNotSupported
	case windows.ERROR_INVALID_HANDLE:
		return ErrInvalidHandle
	case windows.ERROR_TOO_MANY_OPEN_FILES, windows.ERROR_NO_SYSTEM_RESOURCES:
		return ErrResourceExhausted
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL:
		return ErrInsufficientSpace
	}
	return nil
}
