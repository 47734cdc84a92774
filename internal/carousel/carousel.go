package carousel

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ErrAlreadyLoaded is returned when data is loaded into a carousel twice.
var ErrAlreadyLoaded = errors.New("carousel: data already loaded")

// ErrHalted is returned by operations on a carousel whose initialization failed.
var ErrHalted = errors.New("carousel: halted after configuration error")

// ConfigError reports a carousel that cannot run as configured.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "carousel: invalid configuration: " + e.Reason
}

const (
	defaultDuration = 800 * time.Millisecond
	defaultWidth    = 58
	defaultHeight   = 20
)

// Options configure a Carousel.
type Options[T any] struct {
	Render     RenderFunc[T]
	Mode       Mode
	Transition Transitioner
	Scheduler  Scheduler
	Logger     *slog.Logger

	// Dimensions are the preferred pane size in cells.
	Dimensions Dimensions
	// Style is copied into every pane template.
	Style lipgloss.Style

	Duration        time.Duration // zero uses 800ms
	Autoplay        time.Duration // zero disables autoplay
	UseShortestPath bool
}

// Carousel owns the positional state of one widget: the data set, the
// current index, the visible panes, the transition lock and autoplay. All
// methods must be called from a single loop; completion callbacks and timer
// callbacks are expected on that same loop.
type Carousel[T any] struct {
	render     RenderFunc[T]
	mode       Mode
	transition Transitioner
	logger     *slog.Logger
	style      lipgloss.Style
	duration   time.Duration
	shortest   bool

	preferred Dimensions
	real      Dimensions

	events   Emitter[Payload[T]]
	lock     Lock
	autoplay *Autoplay

	state    State
	items    []T
	composer *Composer[T]
	panes    PaneSet
	index    int
	rotation Rotation
	offset   float64
	moves    uint64
}

// New builds a carousel. Nothing is validated until Initialize so handlers
// can be registered first.
func New[T any](opts Options[T]) *Carousel[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = defaultDuration
	}
	dims := opts.Dimensions
	if dims.Width <= 0 {
		dims.Width = defaultWidth
	}
	if dims.Height <= 0 {
		dims.Height = defaultHeight
	}

	c := &Carousel[T]{
		render:     opts.Render,
		mode:       opts.Mode,
		transition: opts.Transition,
		logger:     logger,
		style:      opts.Style,
		duration:   duration,
		shortest:   opts.UseShortestPath,
		preferred:  dims,
		real:       dims,
		rotation:   RestRotation,
		offset:     RestOffset,
	}
	c.autoplay = NewAutoplay(opts.Autoplay, opts.Scheduler, c.lock.IsLocked, c.MoveRight)
	return c
}

// Initialize validates the collaborators, sizes the carousel to parentWidth
// and emits init. A configuration error is logged once and halts the carousel.
func (c *Carousel[T]) Initialize(parentWidth int) error {
	if c.state == StateHalted {
		return ErrHalted
	}
	var reason string
	switch {
	case c.render == nil:
		reason = "missing required render function"
	case c.transition == nil:
		reason = "missing transition collaborator"
	}
	if reason != "" {
		return c.halt(&ConfigError{Reason: reason})
	}

	c.Resize(parentWidth)
	c.events.Trigger(EventInit, Payload[T]{Event: EventInit})
	return nil
}

// Load sets the data set and composes the initial panes at index 0. It starts
// autoplay when configured and emits load. Data can only be loaded once.
func (c *Carousel[T]) Load(items []T) error {
	switch c.state {
	case StateHalted:
		return ErrHalted
	case StateUnloaded:
	default:
		return ErrAlreadyLoaded
	}
	if len(items) == 0 {
		return c.halt(&ConfigError{Reason: "data source returned no items"})
	}

	c.items = append([]T(nil), items...)
	c.composer = NewComposer(c.items, c.render, c.prototype())
	c.index = 0

	panes, err := c.composer.ComposeInitial(c.index, c.mode)
	if err != nil {
		return c.halt(&ConfigError{Reason: fmt.Sprintf("render initial panes: %v", err)})
	}
	c.panes.Reset(panes)
	c.state = StateIdle

	c.autoplay.Start()
	c.events.Trigger(EventLoad, Payload[T]{
		Event: EventLoad,
		Items: append([]T(nil), c.items...),
		Size:  len(c.items),
	})
	return nil
}

// Fail records a data acquisition failure. Acquisition is never retried.
func (c *Carousel[T]) Fail(err error) {
	if err == nil {
		return
	}
	c.logger.Error("carousel: data acquisition failed", "error", err)
}

func (c *Carousel[T]) halt(err error) error {
	c.state = StateHalted
	c.autoplay.Stop()
	c.logger.Error("carousel: initialization halted", "error", err)
	return err
}

func (c *Carousel[T]) prototype() Template {
	return Template{Width: c.real.Width, Height: c.real.Height, Style: c.style}
}

// MoveRight brings the next item to the front. done runs after aftermove.
// It reports whether a transition was started.
func (c *Carousel[T]) MoveRight(done func()) bool {
	return c.RequestMove(Right, done)
}

// MoveLeft brings the previous item to the front.
func (c *Carousel[T]) MoveLeft(done func()) bool {
	return c.RequestMove(Left, done)
}

// RequestMove starts a single-step transition in dir. It is a no-op that
// reports false when no data is loaded or another transition holds the lock.
func (c *Carousel[T]) RequestMove(dir Direction, done func()) bool {
	if c.state != StateIdle && c.state != StateTransitioning {
		return false
	}
	if !c.lock.TryAcquire() {
		return false
	}
	c.autoplay.Interrupt()

	c.events.Trigger(EventBeforeMove, Payload[T]{
		Event:     EventBeforeMove,
		Index:     c.index,
		Direction: dir,
		Item:      c.items[c.index],
	})

	c.state = StateTransitioning
	target := VisualState{Mode: c.mode, Direction: dir}
	if c.mode == ModeCube {
		c.rotation = c.rotation.Add(Rotation{Y: float64(-90 * dir.Step())})
		target.Rotation = c.rotation
	} else {
		c.offset = RestOffset - float64(dir.Step())
		target.Offset = c.offset
	}

	// The index is committed before dispatch so a transitioner that completes
	// synchronously still composes against the post-move index.
	c.index = mustNormalize(c.index+dir.Step(), len(c.items))
	c.transition.Perform(target, c.duration, c.completion(dir, done))
	return true
}

func (c *Carousel[T]) completion(dir Direction, done func()) func() {
	var fired atomic.Bool
	return func() {
		if !fired.CompareAndSwap(false, true) {
			return
		}

		pane, err := c.composer.ComposeIncremental(dir, c.index, c.mode)
		if err != nil {
			c.logger.Warn("carousel: render failed", "index", c.index, "direction", dir.String(), "error", err)
			pane = Pane{Index: mustNormalize(c.index+dir.Step()*c.mode.Reach(), len(c.items))}
		}
		c.panes.Shift(dir, pane)

		if c.mode == ModeCube {
			c.rotation = RestRotation
		} else {
			c.offset = RestOffset
		}

		c.lock.Release()
		c.state = StateIdle
		c.moves++

		c.events.Trigger(EventAfterMove, Payload[T]{
			Event:     EventAfterMove,
			Index:     c.index,
			Direction: dir,
			Item:      c.items[c.index],
			NewPane:   pane,
		})
		if done != nil {
			done()
		}
	}
}

// MoveTo walks one step at a time towards target. When the carousel already
// shows target, done runs immediately and MoveTo reports false.
func (c *Carousel[T]) MoveTo(target int, done func()) bool {
	if c.state != StateIdle && c.state != StateTransitioning {
		return false
	}
	idx := mustNormalize(target, len(c.items))
	if idx == c.index {
		if done != nil {
			done()
		}
		return false
	}
	dir := ChooseDirection(c.index, idx, len(c.items), c.shortest)
	return c.RequestMove(dir, func() {
		c.MoveTo(idx, done)
	})
}

// ChooseDirection picks the direction of the next step from current to
// target. With shortest set it goes right when the forward distance is at
// most half the ring (ties go right); otherwise it goes right when target is
// above current.
func ChooseDirection(current, target, length int, shortest bool) Direction {
	if !shortest {
		if target > current {
			return Right
		}
		return Left
	}
	forward := mustNormalize(target-current, length)
	if 2*forward <= length {
		return Right
	}
	return Left
}

// Resize fits the carousel into parentWidth, keeping the preferred aspect
// ratio and never growing past the preferred width. It emits resize.
func (c *Carousel[T]) Resize(parentWidth int) Dimensions {
	proportion := math.Round(float64(c.preferred.Height)/float64(c.preferred.Width)*1000) / 1000

	if parentWidth > 0 && parentWidth < c.preferred.Width {
		c.real.Width = parentWidth
		c.real.Height = int(math.Round(float64(c.real.Width) * proportion))
	} else if parentWidth > c.real.Width && c.real.Width != c.preferred.Width {
		c.real.Width = min(parentWidth, c.preferred.Width)
		c.real.Height = int(math.Round(float64(c.real.Width) * proportion))
	}

	if c.composer != nil {
		c.composer.template = c.prototype()
	}
	c.events.Trigger(EventResize, Payload[T]{
		Event:  EventResize,
		Width:  c.real.Width,
		Height: c.real.Height,
	})
	return c.real
}

// Refresh re-renders the whole visible set at the current index, picking up
// a new size after Resize. It only runs while idle.
func (c *Carousel[T]) Refresh() error {
	if c.state != StateIdle || c.lock.IsLocked() {
		return nil
	}
	panes, err := c.composer.ComposeInitial(c.index, c.mode)
	if err != nil {
		return fmt.Errorf("refresh panes: %w", err)
	}
	c.panes.Reset(panes)
	return nil
}

// StartAutoplay switches autoplay on and schedules the next tick. During a
// transition the tick is scheduled once the move completes.
func (c *Carousel[T]) StartAutoplay() {
	switch c.state {
	case StateIdle:
		c.autoplay.Start()
	case StateTransitioning:
		c.autoplay.Arm()
	}
}

// StopAutoplay switches autoplay off. A pending tick is cancelled and a move
// already in flight does not schedule another.
func (c *Carousel[T]) StopAutoplay() {
	c.autoplay.Stop()
}

// AutoplayPending reports whether an autoplay tick is scheduled.
func (c *Carousel[T]) AutoplayPending() bool {
	return c.autoplay.Pending()
}

// AutoplayActive reports whether autoplay is switched on.
func (c *Carousel[T]) AutoplayActive() bool {
	return c.autoplay.Active()
}

// AutoplayEnabled reports whether an autoplay interval was configured.
func (c *Carousel[T]) AutoplayEnabled() bool {
	return c.autoplay.Enabled()
}

// Lock prevents moves until Unlock.
func (c *Carousel[T]) Lock() { c.lock.Hold() }

// Unlock allows moves again. Unlocking during a transition lets another move
// start before the first one completes.
func (c *Carousel[T]) Unlock() { c.lock.Release() }

// IsLocked reports whether moves are currently refused.
func (c *Carousel[T]) IsLocked() bool { return c.lock.IsLocked() }

// On registers an event handler.
func (c *Carousel[T]) On(ev Event, fn Handler[Payload[T]]) Subscription {
	return c.events.On(ev, fn)
}

// Off removes an event handler.
func (c *Carousel[T]) Off(ev Event, sub Subscription) bool {
	return c.events.Off(ev, sub)
}

// Trigger emits ev to every registered handler.
func (c *Carousel[T]) Trigger(ev Event, payload Payload[T]) {
	payload.Event = ev
	c.events.Trigger(ev, payload)
}

// Index returns the current data index.
func (c *Carousel[T]) Index() int { return c.index }

// Len returns the number of loaded items.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Item returns the item at a (normalized) index.
func (c *Carousel[T]) Item(i int) (T, bool) {
	var zero T
	idx, err := Normalize(i, len(c.items))
	if err != nil {
		return zero, false
	}
	return c.items[idx], true
}

// Items returns a copy of the loaded data set.
func (c *Carousel[T]) Items() []T { return append([]T(nil), c.items...) }

// Panes returns the visible panes, left to right.
func (c *Carousel[T]) Panes() []Pane { return c.panes.Panes() }

// Pane returns the visible pane in slot.
func (c *Carousel[T]) Pane(slot Slot) (Pane, bool) { return c.panes.At(slot) }

// Mode returns the presentation mode.
func (c *Carousel[T]) Mode() Mode { return c.mode }

// State returns the controller state.
func (c *Carousel[T]) State() State { return c.state }

// Rotation returns the current cube orientation.
func (c *Carousel[T]) Rotation() Rotation { return c.rotation }

// Offset returns the current inline strip offset.
func (c *Carousel[T]) Offset() float64 { return c.offset }

// Dimensions returns the real (fitted) pane size.
func (c *Carousel[T]) Dimensions() Dimensions { return c.real }

// Duration returns the transition duration.
func (c *Carousel[T]) Duration() time.Duration { return c.duration }

// Moves returns the number of completed moves.
func (c *Carousel[T]) Moves() uint64 { return c.moves }
