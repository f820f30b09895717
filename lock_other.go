//go:build !unix && !windows

package fs2

import "os"

// Platforms with neither flock nor LockFileEx get uniform failures instead
// of silently succeeding lock calls.

func lockShared(f *os.File) error { return notSupported("lock_shared") }

func lockExclusive(f *os.File) error { return notSupported("lock_exclusive") }

func tryLockShared(f *os.File) error { return notSupported("try_lock_shared") }

func tryLockExclusive(f *os.File) error { return notSupported("try_lock_exclusive") }

func unlock(f *os.File) error { return notSupported("unlock") }

func duplicate(f *os.File) (*os.File, error) {
	return nil, notSupported("duplicate")
}

func allocatedSize(f *os.File) (uint64, error) {
	return 0, notSupported("allocated_size")
}

func allocate(f *os.File, size uint64) error {
	return notSupported("allocate")
}

func classify(err error) error { return nil }
