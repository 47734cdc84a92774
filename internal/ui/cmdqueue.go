package ui

import tea "github.com/charmbracelet/bubbletea"

// cmdQueue collects commands produced by carousel callbacks (frame ticks,
// autoplay timers) so Update can return them together.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) push(cmd tea.Cmd) {
	if cmd != nil {
		q.cmds = append(q.cmds, cmd)
	}
}

func (q *cmdQueue) drain() tea.Cmd {
	if len(q.cmds) == 0 {
		return nil
	}
	cmds := q.cmds
	q.cmds = nil
	return tea.Batch(cmds...)
}

func (q *cmdQueue) len() int { return len(q.cmds) }
