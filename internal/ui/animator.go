package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cubecarousel/internal/carousel"
)

// frameInterval is the animation frame rate.
const frameInterval = time.Second / 30

type frameMsg struct {
	id uint64
	at time.Time
}

type animation struct {
	id       uint64
	target   carousel.VisualState
	start    time.Time
	duration time.Duration
	progress float64
	done     func()
}

// animator is the carousel's Transitioner. Each transition is driven by
// tea.Tick frames tagged with its id; frames from a superseded transition are
// ignored.
type animator struct {
	queue  *cmdQueue
	now    func() time.Time
	seq    uint64
	active *animation
}

var _ carousel.Transitioner = (*animator)(nil)

func newAnimator(queue *cmdQueue) *animator {
	return &animator{queue: queue, now: time.Now}
}

// Perform starts animating towards target. A non-positive duration completes
// immediately.
func (a *animator) Perform(target carousel.VisualState, duration time.Duration, onComplete func()) {
	if duration <= 0 {
		a.active = nil
		onComplete()
		return
	}
	a.seq++
	a.active = &animation{
		id:       a.seq,
		target:   target,
		start:    a.now(),
		duration: duration,
		done:     onComplete,
	}
	a.queue.push(a.tick(a.seq))
}

func (a *animator) tick(id uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, at: t}
	})
}

// step advances the active animation to msg.at. It reports whether the frame
// belonged to the active animation.
func (a *animator) step(msg frameMsg) bool {
	anim := a.active
	if anim == nil || anim.id != msg.id {
		return false
	}
	elapsed := msg.at.Sub(anim.start)
	if elapsed >= anim.duration {
		anim.progress = 1
		a.active = nil
		anim.done()
		return true
	}
	anim.progress = easeInOut(float64(elapsed) / float64(anim.duration))
	a.queue.push(a.tick(anim.id))
	return true
}

// current returns the in-flight target and eased progress.
func (a *animator) current() (carousel.VisualState, float64, bool) {
	if a.active == nil {
		return carousel.VisualState{}, 0, false
	}
	return a.active.target, a.active.progress, true
}

func easeInOut(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case p < 0.5:
		return 4 * p * p * p
	default:
		return 1 - math.Pow(-2*p+2, 3)/2
	}
}
