package fs2

import "os"

// Guard holds a file lock until Close is called. It frees callers from
// pairing every lock with an explicit Unlock on all return paths:
//
//	g, err := fs2.LockExclusiveGuard(f)
//	if err != nil {
//		return err
//	}
//	defer g.Close()
//
// The guard owns only the lock, never the file; closing the guard leaves the
// file open.
type Guard struct {
	f *os.File
}

// LockSharedGuard acquires a shared lock on f, blocking under contention,
// and returns a guard that releases it.
func LockSharedGuard(f *os.File) (*Guard, error) {
	if err := LockShared(f); err != nil {
		return nil, err
	}
	return &Guard{f: f}, nil
}

// LockExclusiveGuard acquires an exclusive lock on f, blocking under
// contention, and returns a guard that releases it.
func LockExclusiveGuard(f *os.File) (*Guard, error) {
	if err := LockExclusive(f); err != nil {
		return nil, err
	}
	return &Guard{f: f}, nil
}

// TryLockSharedGuard acquires a shared lock on f without blocking. Under
// contention it returns no guard and an error matching ErrWouldBlock.
func TryLockSharedGuard(f *os.File) (*Guard, error) {
	if err := TryLockShared(f); err != nil {
		return nil, err
	}
	return &Guard{f: f}, nil
}

// TryLockExclusiveGuard acquires an exclusive lock on f without blocking.
// Under contention it returns no guard and an error matching ErrWouldBlock.
func TryLockExclusiveGuard(f *os.File) (*Guard, error) {
	if err := TryLockExclusive(f); err != nil {
		return nil, err
	}
	return &Guard{f: f}, nil
}

// File returns the file whose lock the guard holds, or nil after Close.
func (g *Guard) File() *os.File {
	if g == nil {
		return nil
	}
	return g.f
}

// Close releases the lock. Closing a nil or already-closed guard is a no-op
// success.
func (g *Guard) Close() error {
	if g == nil || g.f == nil {
		return nil
	}
	f := g.f
	g.f = nil
	return Unlock(f)
}
