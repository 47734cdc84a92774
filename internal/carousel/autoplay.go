package carousel

import "time"

// Timer is a pending single-shot callback.
type Timer interface {
	Stop() bool
}

// Scheduler creates single-shot timers. The host decides which goroutine
// runs f; the carousel expects it to run on the same loop as every other call.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) Timer

// AfterFunc calls f.
func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) Timer {
	return f(d, fn)
}

// Autoplay moves the carousel to the right on a self-rescheduling timer. The
// next tick is only scheduled once the previous move has completed, so slow
// transitions delay autoplay instead of overlapping it.
type Autoplay struct {
	interval  time.Duration
	scheduler Scheduler
	locked    func() bool
	advance   func(done func()) bool

	timer      Timer
	generation uint64
	active     bool // cleared by Stop; a finished move only reschedules while set
}

// NewAutoplay builds an autoplay chain. An interval <= 0 disables it.
func NewAutoplay(interval time.Duration, scheduler Scheduler, locked func() bool, advance func(done func()) bool) *Autoplay {
	return &Autoplay{
		interval:  interval,
		scheduler: scheduler,
		locked:    locked,
		advance:   advance,
	}
}

// Enabled reports whether an interval was configured.
func (a *Autoplay) Enabled() bool {
	return a != nil && a.interval > 0 && a.scheduler != nil
}

// Pending reports whether a tick is scheduled.
func (a *Autoplay) Pending() bool {
	return a != nil && a.timer != nil
}

// Interval returns the configured delay between moves.
func (a *Autoplay) Interval() time.Duration {
	if a == nil {
		return 0
	}
	return a.interval
}

// Start activates autoplay and schedules the next tick, replacing any pending
// one. It does nothing while the carousel is locked or when autoplay is
// disabled.
func (a *Autoplay) Start() {
	if !a.Enabled() || a.locked() {
		return
	}
	a.active = true
	a.schedule()
}

// Arm activates autoplay without scheduling a tick. The move in flight
// schedules it when it completes.
func (a *Autoplay) Arm() {
	if a.Enabled() {
		a.active = true
	}
}

// Active reports whether autoplay is switched on, pending or not.
func (a *Autoplay) Active() bool {
	return a != nil && a.active
}

// Stop deactivates autoplay and cancels a pending tick. A move already in
// flight completes without scheduling another. It is safe to call repeatedly.
func (a *Autoplay) Stop() {
	if a == nil {
		return
	}
	a.active = false
	a.cancel()
}

// Interrupt cancels a pending tick but leaves autoplay active.
func (a *Autoplay) Interrupt() {
	if a == nil {
		return
	}
	a.cancel()
}

func (a *Autoplay) schedule() {
	a.cancel()
	a.generation++
	gen := a.generation
	a.timer = a.scheduler.AfterFunc(a.interval, func() {
		if gen != a.generation {
			return
		}
		a.timer = nil
		a.advance(a.resume)
	})
}

// resume continues the chain after an autoplay move.
func (a *Autoplay) resume() {
	if !a.active || !a.Enabled() || a.locked() {
		return
	}
	a.schedule()
}

func (a *Autoplay) cancel() {
	// Bumping the generation invalidates a tick that has already fired but
	// not yet been delivered.
	a.generation++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
