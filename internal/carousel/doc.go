// Package carousel implements the positional state machine behind the
// cube carousel widget.
//
// # Overview
//
// A Carousel presents a circular sequence of items as a set of visible panes.
// In cube mode three panes are kept (left, front, right); in inline mode five
// panes form a sliding strip. The package owns index bookkeeping, the
// transition lock, incremental pane regeneration, autoplay timing and the
// event surface. Rendering, animation and timers are collaborators supplied
// by the host.
//
// # Components
//
//   - index.go: Normalize, the modular wraparound over the data length
//   - lock.go: Lock, the single-transition mutual exclusion flag
//   - compose.go: Composer and PaneSet, which render and shift visible panes
//   - carousel.go: Carousel, the move controller (MoveRight, MoveLeft, MoveTo)
//   - autoplay.go: Autoplay, the self-rescheduling right-move timer
//   - events.go: Emitter and the typed Event enum
//
// # Move Lifecycle
//
//	RequestMove(dir)
//	  ├─> Lock.TryAcquire()        fails → return false (dropped)
//	  ├─> Autoplay.Interrupt()
//	  ├─> emit beforemove          old index, direction, item
//	  ├─> commit index             Normalize(index + step)
//	  └─> Transitioner.Perform(target, duration, onComplete)
//
//	onComplete (runs at most once)
//	  ├─> Composer.ComposeIncremental(dir, index)
//	  ├─> PaneSet.Shift(dir, pane)
//	  ├─> reset rotation / offset to rest
//	  ├─> Lock.Release()
//	  ├─> emit aftermove           new pane, index, direction, item
//	  └─> done()
//
// MoveTo is not a jump: it issues single-step moves, re-invoking itself from
// each step's completion until the target is in front.
//
// # Concurrency Model
//
// The carousel is driven by one loop. Transition completions and autoplay
// ticks arrive as callbacks; the host must deliver them on that loop (the TUI
// does so through Bubble Tea messages). The lock uses an atomic
// compare-and-swap so a stray goroutine can never start a second transition,
// but the rest of the state is not synchronized.
//
// If the transitioner never calls onComplete the carousel stays locked.
// There is no transition timeout.
//
// # Error Handling
//
// Missing collaborators and empty data sets are configuration errors: they
// are logged once and the carousel halts. Every other invalid request (moving
// while locked, moving before load) is a no-op that returns false.
package carousel
