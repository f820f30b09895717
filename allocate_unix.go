//go:build unix && !linux && !darwin

package fs2

import (
	"os"

	"golang.org/x/sys/unix"
)

// allocate grows the file to size on platforms without a reservation
// primitive. The logical length is extended, but the new region may be
// sparse: filesystems that allocate lazily can still run out of space when
// it is first written.
func allocate(f *os.File, size uint64) error {
	if size == 0 {
		return nil
	}
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return wrapError("allocate", err)
	}
	if st.Size >= int64(size) {
		return nil
	}
	return wrapError("allocate", unix.Ftruncate(int(f.Fd()), int64(size)))
}
