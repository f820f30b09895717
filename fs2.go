// Package fs2 provides advisory whole-file locks, file handle duplication,
// and storage allocation queries over already-open files, with a single
// behavioral contract across Unix (flock) and Windows (LockFileEx).
//
// The package never opens, creates, or closes files. Every operation takes a
// *os.File owned by the caller, which must stay open for the duration of the
// call.
//
// # Lock Domains
//
// Locks attach to the underlying open-file identity, not to the path. Handles
// produced by [Duplicate] share a lock domain with their origin: a lock taken
// through one is observed, and may be released, through the other. Handles
// from independent opens of the same path are always independent domains and
// only ever see each other's locks as contention.
//
// The two native primitives diverge inside a domain. On Unix a lock request
// against an already-locked domain converts the existing lock in place, so a
// shared-to-exclusive upgrade succeeds when no other domain holds the file;
// the conversion is not atomic and may briefly release the lock under
// contention. On Windows locks stack per handle and never convert: an upgrade
// attempt while a shared lock is held reports [ErrWouldBlock], and every
// acquired lock needs its own [Unlock]. Portable callers should hold at most
// one lock per domain and fully unlock before changing modes.
//
// # Blocking and Cancellation
//
// [LockShared] and [LockExclusive] block without bound while another domain
// holds a conflicting lock; waits interrupted by signal delivery are retried
// internally. No timeout or cancellation is provided. A caller that needs a
// bounded wait can run the blocking call on its own goroutine and abandon the
// wait, accepting that a lock granted after abandonment is still held and
// must be released with [Unlock].
//
// # Errors
//
// Failures are returned as *[Error] values classified against the sentinel
// errors in this package and matched with errors.Is. The package performs no
// logging and no retries beyond the signal-interruption case above.
//
// Advisory locks bind only cooperating processes; nothing stops an
// uncooperative process from reading or writing a locked file.
package fs2

import "os"

// LockShared acquires a shared lock on f's domain, blocking while another
// domain holds an exclusive lock. Any number of domains may hold shared
// locks at once.
func LockShared(f *os.File) error { return lockShared(f) }

// LockExclusive acquires an exclusive lock on f's domain, blocking while any
// other domain holds a shared or exclusive lock.
func LockExclusive(f *os.File) error { return lockExclusive(f) }

// TryLockShared acquires a shared lock on f's domain, or fails with
// ErrWouldBlock if another domain holds an exclusive lock.
func TryLockShared(f *os.File) error { return tryLockShared(f) }

// TryLockExclusive acquires an exclusive lock on f's domain, or fails with
// ErrWouldBlock if any other domain holds a lock.
func TryLockExclusive(f *os.File) error { return tryLockExclusive(f) }

// Unlock releases the lock held by f's domain. Unlocking a domain that holds
// no lock is a no-op success.
func Unlock(f *os.File) error { return unlock(f) }

// Duplicate returns a new handle referring to the same open-file identity as
// f: same lock domain and, where the platform defines one, the same file
// position. The two handles have independent lifetimes; closing one does not
// close the other.
func Duplicate(f *os.File) (*os.File, error) { return duplicate(f) }

// AllocatedSize returns the number of bytes reserved on storage for f. The
// result is rounded to the filesystem's block granularity and may exceed the
// file's logical length.
func AllocatedSize(f *os.File) (uint64, error) { return allocatedSize(f) }

// Allocate reserves at least size bytes of storage for f, growing the
// logical length to size if it was shorter. Writes within the reserved
// extent will not fail for lack of space. Sizes at or below the current
// reservation are a no-op success; Allocate never shrinks a file.
func Allocate(f *os.File, size uint64) error { return allocate(f, size) }

// TotalSpace returns the capacity in bytes of the volume holding f.
func TotalSpace(f *os.File) (uint64, error) { return totalSpace(f) }

// FreeSpace returns the unused capacity in bytes of the volume holding f.
func FreeSpace(f *os.File) (uint64, error) { return freeSpace(f) }

// AvailableSpace returns the bytes on f's volume available to the calling
// user, which may be less than FreeSpace when the filesystem reserves
// capacity for privileged users.
func AvailableSpace(f *os.File) (uint64, error) { return availableSpace(f) }

// AllocationGranularity returns the byte granularity, typically the
// filesystem block or cluster size, in which storage is reserved on f's
// volume.
func AllocationGranularity(f *os.File) (uint64, error) {
	return allocationGranularity(f)
}
