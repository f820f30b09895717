//go:build windows

package fs2

import (
	"errors"
	"syscall"
	"testing"

	"golang.org/x/sys/windows"
)

func TestClassifyErrno(t *testing.T) {
	tests := []struct {
		name  string
		errno syscall.Errno
		want  error
	}{
		{"ERROR_LOCK_VIOLATION", windows.ERROR_LOCK_VIOLATION, ErrWouldBlock},
		{"ERROR_ACCESS_DENIED", windows.ERROR_ACCESS_DENIED, ErrAccessDenied},
		{"ERROR_INVALID_FUNCTION", windows.ERROR_INVALID_FUNCTION, ErrNotSupported},
		{"ERROR_NOT_SUPPORTED", windows.ERROR_NOT_SUPPORTED, ErrNotSupported},
		{"ERROR_INVALID_HANDLE", windows.ERROR_INVALID_HANDLE, ErrInvalidHandle},
		{"ERROR_TOO_MANY_OPEN_FILES", windows.ERROR_TOO_MANY_OPEN_FILES, ErrResourceExhausted},
		{"ERROR_NO_SYSTEM_RESOURCES", windows.ERROR_NO_SYSTEM_RESOURCES, ErrResourceExhausted},
		{"ERROR_DISK_FULL", windows.ERROR_DISK_FULL, ErrInsufficientSpace},
		{"ERROR_HANDLE_DISK_FULL", windows.ERROR_HANDLE_DISK_FULL, ErrInsufficientSpace},
		{"ERROR_FILE_NOT_FOUND", windows.ERROR_FILE_NOT_FOUND, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.errno); got != tt.want {
				t.Fatalf("classify(%v) = %v, want %v", tt.errno, got, tt.want)
			}
		})
	}
}

func TestClassifyNonErrno(t *testing.T) {
	if got := classify(errors.New("not a system error")); got != nil {
		t.Fatalf("classify(non-errno) = %v, want nil", got)
	}
}
