package carousel

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"
)

// manualTransition records Perform calls and completes them on demand.
type manualTransition struct {
	targets  []VisualState
	pending  []func()
	duration time.Duration
}

func (m *manualTransition) Perform(target VisualState, d time.Duration, onComplete func()) {
	m.targets = append(m.targets, target)
	m.pending = append(m.pending, onComplete)
	m.duration = d
}

func (m *manualTransition) complete(t *testing.T) {
	t.Helper()
	if len(m.pending) == 0 {
		t.Fatal("no transition in flight")
	}
	done := m.pending[0]
	m.pending = m.pending[1:]
	done()
}

func (m *manualTransition) drain(t *testing.T) int {
	t.Helper()
	n := 0
	for len(m.pending) > 0 {
		m.complete(t)
		n++
		if n > 1000 {
			t.Fatal("transition chain did not terminate")
		}
	}
	return n
}

func letterRender(item string, tmpl Template, index int) (string, error) {
	return item, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCarousel(t *testing.T, mode Mode, items []string) (*Carousel[string], *manualTransition) {
	t.Helper()
	tr := &manualTransition{}
	c := New(Options[string]{
		Render:          letterRender,
		Mode:            mode,
		Transition:      tr,
		Logger:          quietLogger(),
		UseShortestPath: true,
	})
	if err := c.Initialize(0); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if items != nil {
		if err := c.Load(items); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}
	return c, tr
}

func paneContents(panes []Pane) []string {
	out := make([]string, len(panes))
	for i, p := range panes {
		out[i] = fmt.Sprintf("%s:%s", p.Slot, p.Content)
	}
	return out
}

func TestCarousel_CubeInitialPanesAndMoveRight(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})

	want := []string{"left:D", "front:A", "right:B"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("initial panes = %v, want %v", got, want)
	}
	if got := c.Panes()[0].Index; got != 3 {
		t.Fatalf("left pane index = %d, want 3", got)
	}

	var after []Payload[string]
	c.On(EventAfterMove, func(p Payload[string]) { after = append(after, p) })

	if !c.MoveRight(nil) {
		t.Fatal("MoveRight returned false")
	}
	tr.complete(t)

	if c.Index() != 1 {
		t.Fatalf("Index = %d, want 1", c.Index())
	}
	want = []string{"left:A", "front:B", "right:C"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("panes after move = %v, want %v", got, want)
	}
	if len(after) != 1 {
		t.Fatalf("aftermove fired %d times, want 1", len(after))
	}
	if after[0].Direction.String() != "right" || after[0].Index != 1 || after[0].Item != "B" {
		t.Fatalf("aftermove payload = %+v, want right/1/B", after[0])
	}
	if after[0].NewPane.Content != "C" || after[0].NewPane.Slot != SlotRight {
		t.Fatalf("aftermove new pane = %+v, want C in right slot", after[0].NewPane)
	}
}

func TestCarousel_MoveKeepsSurvivingPaneIdentity(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})
	before := c.Panes()

	c.MoveRight(nil)
	tr.complete(t)
	after := c.Panes()

	if after[0].ID != before[1].ID || after[1].ID != before[2].ID {
		t.Fatalf("surviving panes were re-rendered: before %v after %v", before, after)
	}
	if after[2].ID == "" || after[2].ID == before[0].ID {
		t.Fatalf("new pane id = %q, want a fresh template id", after[2].ID)
	}
}

func TestCarousel_WrapsAroundAtEnd(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})
	for i := 0; i < 3; i++ {
		c.MoveRight(nil)
		tr.complete(t)
	}
	if c.Index() != 3 {
		t.Fatalf("Index = %d, want 3", c.Index())
	}
	c.MoveRight(nil)
	tr.complete(t)
	if c.Index() != 0 {
		t.Fatalf("Index after wrap = %d, want 0", c.Index())
	}

	c.MoveLeft(nil)
	tr.complete(t)
	if c.Index() != 3 {
		t.Fatalf("Index after left wrap = %d, want 3", c.Index())
	}
	want := []string{"left:C", "front:D", "right:A"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("panes = %v, want %v", got, want)
	}
}

func TestCarousel_InlineModeFivePanes(t *testing.T) {
	c, tr := newTestCarousel(t, ModeInline, []string{"A", "B", "C", "D", "E", "F"})

	if got, want := c.Panes()[0].Index, 4; got != want {
		t.Fatalf("far-left index = %d, want %d", got, want)
	}
	want := []string{"far-left:E", "left:F", "front:A", "right:B", "far-right:C"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("initial panes = %v, want %v", got, want)
	}

	c.MoveLeft(nil)
	if got := tr.targets[0].Offset; got != -1 {
		t.Fatalf("left move offset = %v, want -1", got)
	}
	tr.complete(t)
	want = []string{"far-left:D", "left:E", "front:F", "right:A", "far-right:B"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("panes after left = %v, want %v", got, want)
	}
	if c.Offset() != RestOffset {
		t.Fatalf("Offset = %v, want rest %v", c.Offset(), RestOffset)
	}

	c.MoveRight(nil)
	if got := tr.targets[1].Offset; got != -3 {
		t.Fatalf("right move offset = %v, want -3", got)
	}
	tr.complete(t)
	want = []string{"far-left:E", "left:F", "front:A", "right:B", "far-right:C"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("panes after right = %v, want %v", got, want)
	}
}

func TestCarousel_RotationResetAfterMove(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C"})

	c.MoveRight(nil)
	if got := tr.targets[0].Rotation; got.Y != -90 || got.Z != RestRotation.Z {
		t.Fatalf("right target rotation = %+v, want Y=-90", got)
	}
	if c.Rotation().Y != -90 {
		t.Fatalf("in-flight rotation = %+v, want Y=-90", c.Rotation())
	}
	tr.complete(t)
	if c.Rotation() != RestRotation {
		t.Fatalf("rotation after move = %+v, want %+v", c.Rotation(), RestRotation)
	}

	c.MoveLeft(nil)
	if got := tr.targets[1].Rotation; got.Y != 90 {
		t.Fatalf("left target rotation = %+v, want Y=90", got)
	}
	tr.complete(t)
	if c.Rotation() != RestRotation {
		t.Fatalf("rotation after left move = %+v, want %+v", c.Rotation(), RestRotation)
	}
}

func TestCarousel_MoveWhileTransitioningIsDropped(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})

	if !c.MoveRight(nil) {
		t.Fatal("first MoveRight returned false")
	}
	panes := c.Panes()
	index := c.Index()

	if c.MoveRight(nil) {
		t.Fatal("second MoveRight returned true while transitioning")
	}
	if c.MoveLeft(nil) {
		t.Fatal("MoveLeft returned true while transitioning")
	}
	if c.MoveTo(3, nil) {
		t.Fatal("MoveTo returned true while transitioning")
	}
	if len(tr.pending) != 1 {
		t.Fatalf("transitions dispatched = %d, want 1", len(tr.pending))
	}
	if c.Index() != index || !reflect.DeepEqual(c.Panes(), panes) || !c.IsLocked() {
		t.Fatal("dropped move changed index, panes or lock state")
	}
	if c.State() != StateTransitioning {
		t.Fatalf("State = %v, want transitioning", c.State())
	}

	tr.complete(t)
	if c.IsLocked() || c.State() != StateIdle {
		t.Fatalf("after completion locked=%v state=%v, want unlocked idle", c.IsLocked(), c.State())
	}
}

func TestCarousel_CompletionFiresOnce(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})
	afters := 0
	c.On(EventAfterMove, func(Payload[string]) { afters++ })

	c.MoveRight(nil)
	done := tr.pending[0]
	done()
	done()

	if afters != 1 {
		t.Fatalf("aftermove fired %d times, want 1", afters)
	}
	if c.Index() != 1 {
		t.Fatalf("Index = %d, want 1", c.Index())
	}
}

func TestCarousel_EventOrderAndCallback(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C"})
	var trace []string
	c.On(EventBeforeMove, func(p Payload[string]) {
		trace = append(trace, fmt.Sprintf("before:%d:%s:%s", p.Index, p.Direction, p.Item))
	})
	c.On(EventAfterMove, func(p Payload[string]) {
		trace = append(trace, fmt.Sprintf("after:%d:%s:%s", p.Index, p.Direction, p.Item))
	})

	c.MoveLeft(func() { trace = append(trace, "done") })
	trace = append(trace, "dispatched")
	tr.complete(t)

	want := []string{"before:0:left:A", "dispatched", "after:2:left:C", "done"}
	if !reflect.DeepEqual(trace, want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
}

func TestCarousel_IndexCommittedBeforeCompletion(t *testing.T) {
	c, _ := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})
	c.MoveRight(nil)
	if c.Index() != 1 {
		t.Fatalf("Index during transition = %d, want 1", c.Index())
	}
}

func TestCarousel_SynchronousTransition(t *testing.T) {
	c := New(Options[string]{
		Render: letterRender,
		Mode:   ModeCube,
		Transition: TransitionFunc(func(_ VisualState, _ time.Duration, onComplete func()) {
			onComplete()
		}),
		Logger: quietLogger(),
	})
	if err := c.Initialize(0); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := c.Load([]string{"A", "B", "C", "D"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.MoveRight(nil)
	want := []string{"left:A", "front:B", "right:C"}
	if got := paneContents(c.Panes()); !reflect.DeepEqual(got, want) {
		t.Fatalf("panes = %v, want %v", got, want)
	}
}

func TestChooseDirection(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		target   int
		length   int
		shortest bool
		want     Direction
	}{
		{"shortest backward", 0, 7, 10, true, Left},
		{"tie prefers right", 0, 5, 10, true, Right},
		{"shortest forward", 0, 3, 10, true, Right},
		{"forward across wrap", 8, 1, 10, true, Right},
		{"odd length past half", 0, 3, 5, true, Left},
		{"odd length under half", 0, 2, 5, true, Right},
		{"naive ignores wrap up", 0, 7, 10, false, Right},
		{"naive ignores wrap down", 8, 1, 10, false, Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseDirection(tt.current, tt.target, tt.length, tt.shortest)
			if got != tt.want {
				t.Fatalf("ChooseDirection(%d, %d, %d, %v) = %v, want %v",
					tt.current, tt.target, tt.length, tt.shortest, got, tt.want)
			}
		})
	}
}

func TestCarousel_MoveToWalksShortestPath(t *testing.T) {
	items := make([]string, 10)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	c, tr := newTestCarousel(t, ModeCube, items)

	var dirs []Direction
	c.On(EventBeforeMove, func(p Payload[string]) { dirs = append(dirs, p.Direction) })
	reached := false

	if !c.MoveTo(7, func() { reached = true }) {
		t.Fatal("MoveTo returned false")
	}
	steps := tr.drain(t)

	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	for _, d := range dirs {
		if d != Left {
			t.Fatalf("directions = %v, want all left", dirs)
		}
	}
	if c.Index() != 7 || !reached {
		t.Fatalf("Index = %d reached = %v, want 7 true", c.Index(), reached)
	}
}

func TestCarousel_MoveToFixedPointIsImmediate(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B", "C", "D"})
	calls := 0
	for i := 0; i < 3; i++ {
		if c.MoveTo(4, func() { calls++ }) {
			t.Fatal("MoveTo(4) at index 0 started a transition")
		}
	}
	if calls != 3 || len(tr.targets) != 0 {
		t.Fatalf("calls = %d transitions = %d, want 3 and 0", calls, len(tr.targets))
	}
}

func TestCarousel_MoveToWithoutShortestPath(t *testing.T) {
	tr := &manualTransition{}
	c := New(Options[string]{Render: letterRender, Mode: ModeInline, Transition: tr, Logger: quietLogger()})
	_ = c.Initialize(0)
	_ = c.Load([]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"})

	c.MoveTo(9, nil)
	if steps := tr.drain(t); steps != 9 {
		t.Fatalf("steps = %d, want 9 without shortest path", steps)
	}
	if c.Index() != 9 {
		t.Fatalf("Index = %d, want 9", c.Index())
	}
}

func TestCarousel_MovesBeforeLoadAreNoops(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, nil)
	if c.MoveRight(nil) || c.MoveLeft(nil) || c.MoveTo(2, nil) {
		t.Fatal("move before load returned true")
	}
	if len(tr.targets) != 0 {
		t.Fatalf("transitions = %d, want 0", len(tr.targets))
	}
}

func TestCarousel_LockAndUnlock(t *testing.T) {
	c, tr := newTestCarousel(t, ModeCube, []string{"A", "B"})
	c.Lock()
	if c.MoveRight(nil) {
		t.Fatal("MoveRight succeeded while locked")
	}
	c.Unlock()
	if !c.MoveRight(nil) {
		t.Fatal("MoveRight failed after Unlock")
	}
	tr.complete(t)
}

func TestCarousel_ConfigurationErrors(t *testing.T) {
	c := New(Options[string]{Transition: &manualTransition{}, Logger: quietLogger()})
	inits := 0
	c.On(EventInit, func(Payload[string]) { inits++ })

	err := c.Initialize(0)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Initialize error = %v, want ConfigError", err)
	}
	if inits != 0 {
		t.Fatal("init emitted after configuration error")
	}
	if c.State() != StateHalted {
		t.Fatalf("State = %v, want halted", c.State())
	}
	if err := c.Load([]string{"A"}); !errors.Is(err, ErrHalted) {
		t.Fatalf("Load after halt = %v, want ErrHalted", err)
	}
}

func TestCarousel_EmptyDataRejected(t *testing.T) {
	c, _ := newTestCarousel(t, ModeCube, nil)
	loads := 0
	c.On(EventLoad, func(Payload[string]) { loads++ })

	err := c.Load(nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load(nil) error = %v, want ConfigError", err)
	}
	if loads != 0 || c.MoveRight(nil) {
		t.Fatal("empty carousel emitted load or moved")
	}
}

func TestCarousel_LoadOnce(t *testing.T) {
	c, _ := newTestCarousel(t, ModeCube, []string{"A"})
	if err := c.Load([]string{"B"}); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("second Load error = %v, want ErrAlreadyLoaded", err)
	}
}

func TestCarousel_RenderFailureHaltsLoad(t *testing.T) {
	c := New(Options[string]{
		Render: func(string, Template, int) (string, error) {
			return "", errors.New("boom")
		},
		Transition: &manualTransition{},
		Logger:     quietLogger(),
	})
	_ = c.Initialize(0)
	err := c.Load([]string{"A", "B"})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load error = %v, want ConfigError", err)
	}
	if c.State() != StateHalted {
		t.Fatalf("State = %v, want halted", c.State())
	}
}

func TestCarousel_LoadEventPayload(t *testing.T) {
	c, _ := newTestCarousel(t, ModeCube, nil)
	var got Payload[string]
	c.On(EventLoad, func(p Payload[string]) { got = p })
	_ = c.Load([]string{"A", "B", "C"})
	if got.Size != 3 || !reflect.DeepEqual(got.Items, []string{"A", "B", "C"}) {
		t.Fatalf("load payload = %+v, want 3 items", got)
	}
}

func TestCarousel_ResizeKeepsAspectRatio(t *testing.T) {
	tr := &manualTransition{}
	c := New(Options[string]{
		Render:     letterRender,
		Transition: tr,
		Logger:     quietLogger(),
		Dimensions: Dimensions{Width: 58, Height: 40},
	})
	var sizes []Dimensions
	c.On(EventResize, func(p Payload[string]) { sizes = append(sizes, Dimensions{p.Width, p.Height}) })

	_ = c.Initialize(100)
	if got := c.Resize(29); got != (Dimensions{Width: 29, Height: 20}) {
		t.Fatalf("Resize(29) = %+v, want 29x20", got)
	}
	if got := c.Resize(40); got != (Dimensions{Width: 40, Height: 28}) {
		t.Fatalf("Resize(40) = %+v, want 40x28", got)
	}
	if got := c.Resize(200); got != (Dimensions{Width: 58, Height: 40}) {
		t.Fatalf("Resize(200) = %+v, want preferred 58x40", got)
	}
	if len(sizes) != 4 {
		t.Fatalf("resize events = %d, want 4", len(sizes))
	}
}
