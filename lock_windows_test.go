//go:build windows

package fs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// LockFileEx binds locks to the handle and stacks them: a second lock
// request never converts the first, and each acquired lock needs its own
// unlock. These semantics differ from Unix, where a request against a held
// description converts the lock in place.

func TestUpgradeReportsContention(t *testing.T) {
	f, _ := newTestFile(t)

	require.NoError(t, LockShared(f))
	require.ErrorIs(t, TryLockExclusive(f), ErrWouldBlock)
	require.NoError(t, Unlock(f))

	// A second exclusive request on the same handle is also contention.
	require.NoError(t, LockExclusive(f))
	require.ErrorIs(t, TryLockExclusive(f), ErrWouldBlock)
	require.NoError(t, Unlock(f))
}

func TestLockLayering(t *testing.T) {
	f, _ := newTestFile(t)

	// One exclusive and two shared locks stack on the same handle.
	require.NoError(t, LockExclusive(f))
	require.NoError(t, LockShared(f))
	require.NoError(t, LockShared(f))
	require.ErrorIs(t, TryLockExclusive(f), ErrWouldBlock)

	// Each unlock pops one lock; contention persists until all are gone.
	require.NoError(t, Unlock(f))
	require.ErrorIs(t, TryLockExclusive(f), ErrWouldBlock)
	require.NoError(t, Unlock(f))
	require.ErrorIs(t, TryLockExclusive(f), ErrWouldBlock)
	require.NoError(t, Unlock(f))
	require.NoError(t, TryLockExclusive(f))
	require.NoError(t, Unlock(f))
}

func TestDuplicateContendsWithOrigin(t *testing.T) {
	f, _ := newTestFile(t)

	dup, err := Duplicate(f)
	require.NoError(t, err)
	defer dup.Close()

	require.NotEqual(t, f.Fd(), dup.Fd())

	// Locks stack per handle even inside one domain, so the duplicate sees
	// the origin's lock as contention rather than converting it.
	require.NoError(t, LockShared(f))
	require.ErrorIs(t, TryLockExclusive(dup), ErrWouldBlock)

	require.NoError(t, Unlock(f))
	require.NoError(t, LockExclusive(dup))
	require.NoError(t, Unlock(dup))
}
