package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cubecarousel/internal/carousel"
	"github.com/five82/cubecarousel/internal/config"
	"github.com/five82/cubecarousel/internal/eventlog"
	"github.com/five82/cubecarousel/internal/prefs"
	"github.com/five82/cubecarousel/internal/source"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Source     source.Source
	Carousel   config.Carousel
	Mode       carousel.Mode
	Logger     *slog.Logger
	ThemeName  string
	ShowEvents bool
	Prefs      *prefs.Store // nil disables saving
}

// session is the state shared with carousel callbacks, which outlive any
// single copy of Model.
type session struct {
	autoplay bool // user wants autoplay running
	blurred  bool // terminal lost focus
	stale    bool // panes were rendered at an older size
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx    context.Context
	src    source.Source
	logger *slog.Logger
	prefs  *prefs.Store

	// Carousel and its collaborators
	carousel *carousel.Carousel[source.Item]
	anim     *animator
	sched    *loopScheduler
	queue    *cmdQueue
	events   *eventlog.Log
	session  *session

	// UI state
	theme      Theme
	keys       keyMap
	help       help.Model
	spinner    spinner.Model
	prompt     textinput.Model
	prompting  bool
	showEvents bool
	width      int
	height     int
	ready      bool
	loading    bool
	err        error
	notice     string
}

// New creates a new Bubble Tea model and initializes its carousel.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	queue := &cmdQueue{}
	anim := newAnimator(queue)
	sched := newLoopScheduler(queue)

	c := carousel.New(carousel.Options[source.Item]{
		Render:     renderItem,
		Mode:       opts.Mode,
		Transition: anim,
		Scheduler:  sched,
		Logger:     logger,
		Dimensions: carousel.Dimensions{
			Width:  opts.Carousel.Width,
			Height: opts.Carousel.Height,
		},
		Style:           paneStyle(),
		Duration:        opts.Carousel.Duration,
		Autoplay:        opts.Carousel.Autoplay,
		UseShortestPath: opts.Carousel.ShortestPath,
	})

	prompt := textinput.New()
	prompt.Prompt = "go to: "
	prompt.Placeholder = "number or title"
	prompt.CharLimit = 64

	m := Model{
		ctx:        ctx,
		src:        opts.Source,
		logger:     logger,
		prefs:      opts.Prefs,
		carousel:   c,
		anim:       anim,
		sched:      sched,
		queue:      queue,
		events:     eventlog.New(eventlog.DefaultCapacity),
		session:    &session{autoplay: opts.Carousel.Autoplay > 0},
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		prompt:     prompt,
		showEvents: opts.ShowEvents,
		loading:    true,
	}
	m.subscribe()

	if err := c.Initialize(0); err != nil {
		m.err = err
		m.loading = false
	}
	return m
}

// subscribe records every carousel event in the event log.
func (m Model) subscribe() {
	record := func(p carousel.Payload[source.Item]) {
		e := eventlog.Entry{Event: p.Event.String(), Index: p.Index}
		switch p.Event {
		case carousel.EventBeforeMove, carousel.EventAfterMove:
			e.Direction = p.Direction.String()
			e.Detail = p.Item.Label()
		case carousel.EventLoad:
			e.Detail = pluralize(p.Size, "item")
		case carousel.EventResize:
			e.Detail = sizeLabel(p.Width, p.Height)
		}
		m.events.Add(e)
		m.logger.Debug("carousel event", "event", e.Event, "index", p.Index, "detail", e.Detail)
	}
	for _, ev := range []carousel.Event{
		carousel.EventInit,
		carousel.EventLoad,
		carousel.EventResize,
		carousel.EventBeforeMove,
		carousel.EventAfterMove,
	} {
		m.carousel.On(ev, record)
	}

	c, s, logger := m.carousel, m.session, m.logger
	c.On(carousel.EventAfterMove, func(carousel.Payload[source.Item]) {
		if !s.stale {
			return
		}
		if err := c.Refresh(); err != nil {
			logger.Warn("refresh panes", "error", err)
			return
		}
		s.stale = false
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchCmd(m.ctx, m.src),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resize()

	case itemsMsg:
		m.handleItems(msg)

	case frameMsg:
		m.anim.step(msg)

	case timerMsg:
		m.sched.fire(msg.id)

	case tea.FocusMsg:
		m.session.blurred = false
		m.resumeAutoplay()

	case tea.BlurMsg:
		m.session.blurred = true
		m.carousel.StopAutoplay()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	}
	return m, tea.Batch(cmd, m.queue.drain())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// handleItems loads fetched data into the carousel.
func (m *Model) handleItems(msg itemsMsg) {
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.carousel.Fail(msg.err)
		return
	}
	if err := m.carousel.Load(msg.items); err != nil {
		m.err = err
		return
	}
	m.logger.Info("items loaded", "count", len(msg.items), "mode", m.carousel.Mode().String())
	if m.session.blurred {
		m.carousel.StopAutoplay()
	}
	if m.ready {
		m.resize()
	}
}

// resize fits the carousel into the window and re-renders the panes.
// Before load the window size is only recorded: Load renders at the
// preferred size and the fit is applied afterwards, so a pane too small to
// draw leaves the carousel running instead of halting it.
func (m *Model) resize() {
	if m.carousel.State() == carousel.StateUnloaded {
		return
	}
	m.carousel.Resize(m.carouselWidth())
	if m.carousel.State() == carousel.StateHalted {
		return
	}
	if m.carousel.State() != carousel.StateIdle || m.carousel.IsLocked() {
		m.session.stale = true
		return
	}
	m.refresh()
}

// refresh re-renders the panes at the current size.
func (m Model) refresh() {
	if err := m.carousel.Refresh(); err != nil {
		m.logger.Warn("refresh panes", "error", err)
		m.session.stale = true
		return
	}
	m.session.stale = false
}

// resumeAutoplay restarts autoplay when the user wants it and the terminal
// has focus.
func (m Model) resumeAutoplay() {
	if m.session.autoplay && !m.session.blurred && m.carousel.AutoplayEnabled() {
		m.carousel.StartAutoplay()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Events):
		m.showEvents = !m.showEvents
		m.savePrefs()
		m.resize()
		return m, nil
	}

	if m.carousel.State() != carousel.StateIdle && m.carousel.State() != carousel.StateTransitioning {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.move(m.carousel.MoveLeft)

	case key.Matches(msg, m.keys.Right):
		m.move(m.carousel.MoveRight)

	case key.Matches(msg, m.keys.First):
		m.moveTo(0)

	case key.Matches(msg, m.keys.Last):
		m.moveTo(m.carousel.Len() - 1)

	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.prompt.Reset()
		cmd := m.prompt.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Autoplay):
		m.toggleAutoplay()

	case key.Matches(msg, m.keys.Lock):
		if m.carousel.State() != carousel.StateIdle {
			return m, nil
		}
		if m.carousel.IsLocked() {
			m.carousel.Unlock()
			m.notice = "unlocked"
			if m.session.stale {
				m.refresh()
			}
			m.resumeAutoplay()
		} else {
			m.carousel.Lock()
			m.carousel.StopAutoplay()
			m.notice = "locked"
		}
	}
	return m, nil
}

func (m *Model) move(step func(done func()) bool) {
	if !step(m.resumeAutoplay) && m.carousel.IsLocked() && m.carousel.State() == carousel.StateIdle {
		m.notice = "locked"
	}
}

func (m *Model) moveTo(target int) {
	if !m.carousel.MoveTo(target, m.resumeAutoplay) && m.carousel.IsLocked() && m.carousel.State() == carousel.StateIdle {
		m.notice = "locked"
	}
}

func (m *Model) toggleAutoplay() {
	if !m.carousel.AutoplayEnabled() {
		m.notice = "autoplay is not configured"
		return
	}
	m.session.autoplay = !m.session.autoplay
	if m.session.autoplay {
		m.resumeAutoplay()
		return
	}
	m.carousel.StopAutoplay()
}

// handlePromptKey processes input while the go-to prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.prompt.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.prompting = false
		m.prompt.Blur()
		target, ok := resolveTarget(m.prompt.Value(), m.carousel.Items())
		if !ok {
			m.notice = "no match for " + quote(m.prompt.Value())
			return m, nil
		}
		m.moveTo(target)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) savePrefs() {
	if m.prefs == nil {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ShowEvents: m.showEvents}
	if err := m.prefs.Save(p); err != nil {
		m.logger.Warn("save prefs", "error", err)
	}
}

// Messages

type itemsMsg struct {
	items []source.Item
	err   error
}

// Commands

func fetchCmd(ctx context.Context, src source.Source) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return itemsMsg{err: errors.New("no data source configured")}
		}
		ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()
		items, err := src.Fetch(ctx)
		return itemsMsg{items: items, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
