package carousel

import "sync/atomic"

// Lock guards against overlapping pane transitions. The zero value is unlocked.
// Requests that fail to acquire are dropped, never queued.
type Lock struct {
	held atomic.Bool
}

// TryAcquire marks the lock held and reports true, or reports false without
// changing anything when it is already held.
func (l *Lock) TryAcquire() bool {
	return l.held.CompareAndSwap(false, true)
}

// Hold marks the lock held whether or not it already was.
func (l *Lock) Hold() {
	l.held.Store(true)
}

// Release unmarks the lock. Releasing an unlocked Lock is a no-op.
func (l *Lock) Release() {
	l.held.Store(false)
}

// IsLocked reports whether a transition (or an explicit Hold) is in effect.
func (l *Lock) IsLocked() bool {
	return l.held.Load()
}
