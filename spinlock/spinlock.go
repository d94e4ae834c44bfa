// Package spinlock implements a sync.Locker that busy-waits instead of parking
// the goroutine. It suits critical sections that are a handful of
// instructions long, such as a single append.
package spinlock

import (
	"runtime"

	"go.uber.org/atomic"
)

// maxBackoff caps the busy-wait loop; past it the waiter yields the processor.
const maxBackoff = 16

// SpinLock is a mutual exclusion lock. The zero value is unlocked.
type SpinLock struct {
	locked atomic.Bool
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	backoff := 1
	for !l.TryLock() {
		for i := 0; i < backoff; i++ {
			if !l.locked.Load() {
				break
			}
		}
		if backoff < maxBackoff {
			backoff <<= 1
		} else {
			runtime.Gosched()
		}
	}
}

// TryLock tries to acquire the lock without waiting and reports whether it succeeded.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwap(false, true)
}

// Unlock releases the lock. Unlocking an unlocked SpinLock panics.
func (l *SpinLock) Unlock() {
	if !l.locked.CompareAndSwap(true, false) {
		panic("spinlock: unlock of unlocked lock")
	}
}
