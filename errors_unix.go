//go:build unix

package fs2

import (
	"errors"

	"golang.org/x/sys/unix"
)

// classify maps a native errno to the matching sentinel, or nil for failures
// outside the taxonomy. EWOULDBLOCK and EAGAIN, and likewise ENOTSUP and
// EOPNOTSUPP, alias each other on some systems, so the mapping compares
// rather than switching on constants.
func classify(err error) error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return nil
	}
	switch {
	case errno == unix.EWOULDBLOCK || errno == unix.EAGAIN:
		return ErrWouldBlock
	case errno == unix.EACCES || errno == unix.EPERM:
		return ErrAccessDenied
	case errno == unix.ENOTSUP || errno == unix.EOPNOTSUPP || errno == unix.ENOLCK:
		// Typical of network filesystems with no advisory lock support.
		return ErrNotSupported
	case errno == unix.EBADF:
		return ErrInvalidHandle
	case errno == unix.EMFILE || errno == unix.ENFILE:
		return ErrResourceExhausted
	case errno == unix.ENOSPC || errno == unix.EDQUOT:
		return ErrInsufficientSpace
	}
	return nil
}
