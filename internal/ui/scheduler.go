package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cubecarousel/internal/carousel"
)

type timerMsg struct {
	id uint64
}

// loopScheduler delivers carousel timers as Bubble Tea messages so their
// callbacks run on the update loop. Stopping a timer forgets its callback;
// the tick still arrives but finds nothing to run.
type loopScheduler struct {
	queue   *cmdQueue
	seq     uint64
	pending map[uint64]func()
}

var _ carousel.Scheduler = (*loopScheduler)(nil)

func newLoopScheduler(queue *cmdQueue) *loopScheduler {
	return &loopScheduler{queue: queue, pending: make(map[uint64]func())}
}

func (s *loopScheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	s.seq++
	id := s.seq
	s.pending[id] = f
	s.queue.push(tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return loopTimer{s: s, id: id}
}

// fire runs the callback for id, if it is still pending.
func (s *loopScheduler) fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

type loopTimer struct {
	s  *loopScheduler
	id uint64
}

func (t loopTimer) Stop() bool {
	_, ok := t.s.pending[t.id]
	delete(t.s.pending, t.id)
	return ok
}
