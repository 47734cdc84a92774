package carousel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestLock_AcquireRelease(t *testing.T) {
	var l Lock
	if l.IsLocked() {
		t.Fatal("zero Lock is locked")
	}
	if !l.TryAcquire() {
		t.Fatal("first TryAcquire failed")
	}
	if l.TryAcquire() {
		t.Fatal("second TryAcquire succeeded while held")
	}
	l.Release()
	l.Release()
	if l.IsLocked() {
		t.Fatal("IsLocked after Release = true")
	}
	if !l.TryAcquire() {
		t.Fatal("TryAcquire after Release failed")
	}
}

func TestLock_HoldBlocksAcquire(t *testing.T) {
	var l Lock
	l.Hold()
	l.Hold()
	if l.TryAcquire() {
		t.Fatal("TryAcquire succeeded after Hold")
	}
	l.Release()
	if !l.TryAcquire() {
		t.Fatal("TryAcquire failed after Release")
	}
}

func TestLock_ConcurrentAcquireSucceedsOnce(t *testing.T) {
	var l Lock
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if l.TryAcquire() {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Fatalf("successful acquisitions = %d, want 1", got)
	}
}
