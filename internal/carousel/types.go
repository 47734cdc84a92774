package carousel

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Direction is the way the carousel moves. Moving right brings the next item
// to the front.
type Direction int

const (
	Right Direction = iota
	Left
)

// String returns the event-payload name of the direction.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Step is the index delta of a single move.
func (d Direction) Step() int {
	if d == Left {
		return -1
	}
	return 1
}

// Mode selects the presentation. It is fixed when the carousel is built.
type Mode int

const (
	// ModeInline is the fallback sliding strip with five panes.
	ModeInline Mode = iota
	// ModeCube is the rotating cube with three panes (left, front, right).
	ModeCube
)

func (m Mode) String() string {
	if m == ModeCube {
		return "cube"
	}
	return "inline"
}

// Reach is how many panes are kept on each side of the front pane.
func (m Mode) Reach() int {
	if m == ModeCube {
		return 1
	}
	return 2
}

// Width is the number of visible pane slots.
func (m Mode) Width() int {
	return 2*m.Reach() + 1
}

// Slot is a pane's position relative to the front pane.
type Slot int

const (
	SlotFarLeft  Slot = -2
	SlotLeft     Slot = -1
	SlotFront    Slot = 0
	SlotRight    Slot = 1
	SlotFarRight Slot = 2
)

func (s Slot) String() string {
	switch s {
	case SlotFarLeft:
		return "far-left"
	case SlotLeft:
		return "left"
	case SlotFront:
		return "front"
	case SlotRight:
		return "right"
	case SlotFarRight:
		return "far-right"
	default:
		return "hidden"
	}
}

// State is the move controller state.
type State int

const (
	StateUnloaded State = iota
	StateIdle
	StateTransitioning
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTransitioning:
		return "transitioning"
	case StateHalted:
		return "halted"
	default:
		return "unloaded"
	}
}

// Rotation is the cumulative cube orientation: degrees around X and Y, and a
// Z translation in pane widths.
type Rotation struct {
	X, Y, Z float64
}

// Add returns r shifted by delta.
func (r Rotation) Add(delta Rotation) Rotation {
	return Rotation{X: r.X + delta.X, Y: r.Y + delta.Y, Z: r.Z + delta.Z}
}

// RestRotation is the canonical cube orientation between moves.
var RestRotation = Rotation{Z: -0.5}

// RestOffset is the inline strip offset (in pane widths) that puts the front
// pane in view.
const RestOffset = -2.0

// VisualState is what the transition collaborator animates towards.
type VisualState struct {
	Mode      Mode
	Direction Direction
	Rotation  Rotation // cube mode
	Offset    float64  // inline mode
}

// Transitioner executes a visual transition and calls onComplete once it has
// finished. The carousel stays locked until onComplete runs.
type Transitioner interface {
	Perform(target VisualState, duration time.Duration, onComplete func())
}

// TransitionFunc adapts a function to Transitioner.
type TransitionFunc func(target VisualState, duration time.Duration, onComplete func())

// Perform calls f.
func (f TransitionFunc) Perform(target VisualState, duration time.Duration, onComplete func()) {
	f(target, duration, onComplete)
}

// Template is a fresh pane instance handed to the render function. Every
// render receives its own Template with a new ID.
type Template struct {
	ID     string
	Width  int
	Height int
	Style  lipgloss.Style
}

// RenderFunc turns an item into pane content.
type RenderFunc[T any] func(item T, tmpl Template, index int) (string, error)

// Pane is one rendered, positioned item.
type Pane struct {
	ID      string
	Index   int
	Slot    Slot
	Content string
}

// Dimensions is a width/height pair in terminal cells.
type Dimensions struct {
	Width  int
	Height int
}
