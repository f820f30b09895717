//go:build darwin

package fs2

import (
	"os"

	"golang.org/x/sys/unix"
)

// allocate reserves storage with fcntl F_PREALLOCATE and then grows the
// logical length to size if it was shorter. Contiguous placement is
// requested first; filesystems too fragmented for that get a second attempt
// allowing scattered extents.
func allocate(f *os.File, size uint64) error {
	if size == 0 {
		return nil
	}
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return wrapError("allocate", err)
	}
	if allocated := uint64(st.Blocks) * 512; allocated < size {
		// F_PEOFPOSMODE allocates past the physical end of file, so the
		// length is the shortfall, not the absolute size.
		fstore := unix.Fstore_t{
			Flags:   unix.F_ALLOCATECONTIG,
			Posmode: unix.F_PEOFPOSMODE,
			Offset:  0,
			Length:  int64(size - allocated),
		}
		if err := unix.FcntlFstore(f.Fd(), unix.F_PREALLOCATE, &fstore); err != nil {
			fstore.Flags = unix.F_ALLOCATEALL
			if err := unix.FcntlFstore(f.Fd(), unix.F_PREALLOCATE, &fstore); err != nil {
				return wrapError("allocate", err)
			}
		}
	}
	if st.Size < int64(size) {
		if err := unix.Ftruncate(int(f.Fd()), int64(size)); err != nil {
			return wrapError("allocate", err)
		}
	}
	return nil
}
