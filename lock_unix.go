//go:build unix

package fs2

import (
	"os"

	"golang.org/x/sys/unix"
)

func lockShared(f *os.File) error {
	return flockBlocking(f, "lock_shared", unix.LOCK_SH)
}

func lockExclusive(f *os.File) error {
	return flockBlocking(f, "lock_exclusive", unix.LOCK_EX)
}

func tryLockShared(f *os.File) error {
	return wrapError("try_lock_shared", flock(f, unix.LOCK_SH|unix.LOCK_NB))
}

func tryLockExclusive(f *os.File) error {
	return wrapError("try_lock_exclusive", flock(f, unix.LOCK_EX|unix.LOCK_NB))
}

// unlock releases the lock held through f's open file description. LOCK_UN
// on an unlocked description already succeeds, so idempotence needs no
// special casing here.
func unlock(f *os.File) error {
	return wrapError("unlock", flock(f, unix.LOCK_UN))
}

// flockBlocking waits for the lock, retrying when signal delivery interrupts
// the wait. Only blocking requests can observe EINTR.
func flockBlocking(f *os.File, op string, how int) error {
	for {
		err := flock(f, how)
		if err != unix.EINTR {
			return wrapError(op, err)
		}
	}
}

func flock(f *os.File, how int) error {
	return unix.Flock(int(f.Fd()), how)
}

// duplicate dups the descriptor with close-on-exec set, so the new handle
// does not leak into child processes. The duplicate shares the open file
// description: file position and lock domain are common to both handles.
func duplicate(f *os.File) (*os.File, error) {
	fd, err := unix.FcntlInt(f.Fd(), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return nil, wrapError("duplicate", err)
	}
	return os.NewFile(uintptr(fd), f.Name()), nil
}

func allocatedSize(f *os.File) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return 0, wrapError("allocated_size", err)
	}
	// st_blocks is always counted in 512-byte units, regardless of the
	// filesystem block size.
	return uint64(st.Blocks) * 512, nil
}
