//go:build windows

package fs2

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Locks always cover the maximal byte range, so one lock spans the whole
// file no matter how it grows.
const (
	lockRangeLow  = ^uint32(0)
	lockRangeHigh = ^uint32(0)
)

func lockShared(f *os.File) error {
	return lockFile(f, "lock_shared", 0)
}

func lockExclusive(f *os.File) error {
	return lockFile(f, "lock_exclusive", windows.LOCKFILE_EXCLUSIVE_LOCK)
}

func tryLockShared(f *os.File) error {
	return lockFile(f, "try_lock_shared", windows.LOCKFILE_FAIL_IMMEDIATELY)
}

func tryLockExclusive(f *os.File) error {
	return lockFile(f, "try_lock_exclusive",
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY)
}

func lockFile(f *os.File, op string, flags uint32) error {
	err := windows.LockFileEx(windows.Handle(f.Fd()), flags,
		0, lockRangeLow, lockRangeHigh, new(windows.Overlapped))
	return wrapError(op, err)
}

func unlock(f *os.File) error {
	err := windows.UnlockFileEx(windows.Handle(f.Fd()),
		0, lockRangeLow, lockRangeHigh, new(windows.Overlapped))
	// Releasing a handle that holds no lock is a no-op.
	if err == windows.ERROR_NOT_LOCKED {
		err = nil
	}
	return wrapError("unlock", err)
}

// duplicate clones the handle within the current process. The clone refers
// to the same kernel file object, so it shares the file position and lock
// domain with the original.
func duplicate(f *os.File) (*os.File, error) {
	h := windows.Handle(f.Fd())
	// A closed file yields INVALID_HANDLE_VALUE, which DuplicateHandle
	// would treat as the current-process pseudo handle.
	if h == windows.InvalidHandle {
		return nil, wrapError("duplicate", windows.ERROR_INVALID_HANDLE)
	}
	proc := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(proc, h, proc, &dup,
		0, true, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return nil, wrapError("duplicate", err)
	}
	return os.NewFile(uintptr(dup), f.Name()), nil
}

// fileStandardInfo mirrors FILE_STANDARD_INFO.
type fileStandardInfo struct {
	AllocationSize int64
	EndOfFile      int64
	NumberOfLinks  uint32
	DeletePending  uint8
	Directory      uint8
	_              [2]byte
}

// fileAllocationInfo mirrors FILE_ALLOCATION_INFO.
type fileAllocationInfo struct {
	AllocationSize int64
}

func standardInfo(f *os.File, op string) (fileStandardInfo, error) {
	var info fileStandardInfo
	err := windows.GetFileInformationByHandleEx(windows.Handle(f.Fd()),
		windows.FileStandardInfo,
		(*byte)(unsafe.Pointer(&info)), uint32(unsafe.Sizeof(info)))
	if err != nil {
		return info, wrapError(op, err)
	}
	return info, nil
}

func allocatedSize(f *os.File) (uint64, error) {
	info, err := standardInfo(f, "allocated_size")
	if err != nil {
		return 0, err
	}
	return uint64(info.AllocationSize), nil
}

func allocate(f *os.File, size uint64) error {
	if size == 0 {
		return nil
	}
	info, err := standardInfo(f, "allocate")
	if err != nil {
		return err
	}
	if uint64(info.AllocationSize) < size {
		alloc := fileAllocationInfo{AllocationSize: int64(size)}
		err := windows.SetFileInformationByHandle(windows.Handle(f.Fd()),
			windows.FileAllocationInfo,
			(*byte)(unsafe.Pointer(&alloc)), uint32(unsafe.Sizeof(alloc)))
		if err != nil {
			return wrapError("allocate", err)
		}
	}
	// Space beyond the logical end of file is reclaimed when the last handle
	// closes, so the reservation is made durable by growing the length too.
	if uint64(info.EndOfFile) < size {
		if err := f.Truncate(int64(size)); err != nil {
			return wrapError("allocate", err)
		}
	}
	return nil
}
