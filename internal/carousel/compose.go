package carousel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Composer renders the panes that have to be visible around the current index.
type Composer[T any] struct {
	items    []T
	render   RenderFunc[T]
	template Template
}

// NewComposer builds a Composer over items. The prototype template supplies
// size and style; each render gets a copy with its own ID.
func NewComposer[T any](items []T, render RenderFunc[T], prototype Template) *Composer[T] {
	return &Composer[T]{items: items, render: render, template: prototype}
}

// ComposeInitial renders the full visible set for mode, ordered left to right.
func (c *Composer[T]) ComposeInitial(current int, mode Mode) ([]Pane, error) {
	reach := mode.Reach()
	panes := make([]Pane, 0, mode.Width())
	for offset := -reach; offset <= reach; offset++ {
		pane, err := c.renderAt(current+offset, Slot(offset))
		if err != nil {
			return nil, err
		}
		panes = append(panes, pane)
	}
	return panes, nil
}

// ComposeIncremental renders the single edge pane revealed by a move in dir.
// current is the index after the move.
func (c *Composer[T]) ComposeIncremental(dir Direction, current int, mode Mode) (Pane, error) {
	offset := dir.Step() * mode.Reach()
	return c.renderAt(current+offset, Slot(offset))
}

func (c *Composer[T]) renderAt(candidate int, slot Slot) (Pane, error) {
	if c.render == nil {
		return Pane{}, errors.New("render function is nil")
	}
	idx, err := Normalize(candidate, len(c.items))
	if err != nil {
		return Pane{}, err
	}
	tmpl := c.template
	tmpl.ID = uuid.NewString()
	content, err := c.render(c.items[idx], tmpl, idx)
	if err != nil {
		return Pane{}, fmt.Errorf("render item %d: %w", idx, err)
	}
	return Pane{ID: tmpl.ID, Index: idx, Slot: slot, Content: content}, nil
}

// PaneSet is the ordered (left to right) list of visible panes.
type PaneSet struct {
	panes []Pane
}

// Reset replaces the whole set.
func (s *PaneSet) Reset(panes []Pane) {
	s.panes = append(s.panes[:0:0], panes...)
	s.reslot()
}

// Shift regenerates the set after a move: moving right drops the leftmost pane
// and appends pane, moving left drops the rightmost and prepends it.
func (s *PaneSet) Shift(dir Direction, pane Pane) {
	if len(s.panes) == 0 {
		return
	}
	if dir == Right {
		s.panes = append(s.panes[1:len(s.panes):len(s.panes)], pane)
	} else {
		next := make([]Pane, 0, len(s.panes))
		next = append(next, pane)
		next = append(next, s.panes[:len(s.panes)-1]...)
		s.panes = next
	}
	s.reslot()
}

func (s *PaneSet) reslot() {
	reach := len(s.panes) / 2
	for i := range s.panes {
		s.panes[i].Slot = Slot(i - reach)
	}
}

// Panes returns a copy of the visible panes.
func (s *PaneSet) Panes() []Pane {
	return append([]Pane(nil), s.panes...)
}

// At returns the pane in slot, if present.
func (s *PaneSet) At(slot Slot) (Pane, bool) {
	for _, p := range s.panes {
		if p.Slot == slot {
			return p, true
		}
	}
	return Pane{}, false
}

// Indexes returns the data indexes of the visible panes, left to right.
func (s *PaneSet) Indexes() []int {
	out := make([]int, len(s.panes))
	for i, p := range s.panes {
		out[i] = p.Index
	}
	return out
}
