//go:build linux || darwin || freebsd

package fs2

import (
	"os"

	"golang.org/x/sys/unix"
)

// Volume statistics come from fstatfs on the handle itself, so they describe
// the filesystem the file actually lives on even across bind mounts. Field
// types in Statfs_t differ between kernels, hence the uniform conversions.

func totalSpace(f *os.File) (uint64, error) {
	st, err := fstatfs(f, "total_space")
	if err != nil {
		return 0, err
	}
	return uint64(st.Bsize) * uint64(st.Blocks), nil
}

func freeSpace(f *os.File) (uint64, error) {
	st, err := fstatfs(f, "free_space")
	if err != nil {
		return 0, err
	}
	return uint64(st.Bsize) * uint64(st.Bfree), nil
}

func availableSpace(f *os.File) (uint64, error) {
	st, err := fstatfs(f, "available_space")
	if err != nil {
		return 0, err
	}
	// f_bavail is signed on some kernels and goes negative when the
	// unprivileged reserve is exhausted.
	avail := int64(st.Bavail)
	if avail < 0 {
		return 0, nil
	}
	return uint64(st.Bsize) * uint64(avail), nil
}

func allocationGranularity(f *os.File) (uint64, error) {
	st, err := fstatfs(f, "allocation_granularity")
	if err != nil {
		return 0, err
	}
	return uint64(st.Bsize), nil
}

func fstatfs(f *os.File, op string) (unix.Statfs_t, error) {
	var st unix.Statfs_t
	if err := unix.Fstatfs(int(f.Fd()), &st); err != nil {
		return st, wrapError(op, err)
	}
	return st, nil
}
