//go:build linux

package fs2

import (
	"os"

	"golang.org/x/sys/unix"
)

// allocate reserves the range [0, size) with fallocate. Mode 0 extends the
// logical length when size exceeds it and guarantees that later writes in
// the range cannot fail with ENOSPC.
func allocate(f *os.File, size uint64) error {
	if size == 0 {
		return nil
	}
	for {
		err := unix.Fallocate(int(f.Fd()), 0, 0, int64(size))
		if err != unix.EINTR {
			return wrapError("allocate", err)
		}
	}
}
