package fs2

import "errors"

// Sentinel errors classifying native failures. Match with errors.Is.
var (
	// ErrWouldBlock reports that a non-blocking lock request found the file
	// already incompatibly locked. Expected under normal contention.
	ErrWouldBlock = errors.New("fs2: lock would block")

	// ErrAccessDenied reports that the platform permission model refused the
	// operation.
	ErrAccessDenied = errors.New("fs2: access denied")

	// ErrNotSupported reports that the filesystem or platform does not
	// implement the requested primitive for this handle, as opposed to
	// transient contention. Advisory locks and pre-allocation are both
	// missing on some network filesystems.
	ErrNotSupported = errors.New("fs2: operation not supported")

	// ErrInvalidHandle reports that the handle is not a valid open-file
	// reference.
	ErrInvalidHandle = errors.New("fs2: invalid file handle")

	// ErrResourceExhausted reports that a system-wide limit, such as a full
	// descriptor or handle table, prevented duplication.
	ErrResourceExhausted = errors.New("fs2: system resources exhausted")

	// ErrInsufficientSpace reports that storage could not satisfy a
	// reservation request.
	ErrInsufficientSpace = errors.New("fs2: insufficient storage space")
)

// Error is the failure type returned by every operation in this package. It
// carries the native platform error and, when the native code falls inside
// the taxonomy above, the matching sentinel. errors.Is matches an *Error
// against both.
type Error struct {
	Op   string // the failing operation, e.g. "try_lock_exclusive"
	Kind error  // sentinel classification, nil when unclassified
	Err  error  // underlying native error
}

func (e *Error) Error() string {
	return "fs2: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// wrapError classifies err for op. A nil err passes through unchanged.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: classify(err), Err: err}
}

// notSupported reports an operation the platform cannot perform at all.
func notSupported(op string) error {
	return &Error{Op: op, Kind: ErrNotSupported, Err: errors.ErrUnsupported}
}
