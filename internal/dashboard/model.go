package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/sim"
	"github.com/rileyhilliard/vitals/internal/vehicle"
)

// Model is the Bubble Tea model for the vehicle dashboard.
type Model struct {
	engine   *sim.Engine
	state    vehicle.State
	samples  []vehicle.HistoricalSample
	history  *History
	interval time.Duration
	log      logger.Logger

	width    int
	height   int
	showHelp bool
	paused   bool
	quitting bool

	// generation increments whenever the tick chain is cut (pause, quit).
	// Ticks carry the generation they were scheduled under; stale ones are dropped.
	generation int
	ticks      int
	rounds     int

	viewport      viewport.Model
	viewportReady bool
}

// tickMsg signals a simulation tick scheduled under generation gen.
type tickMsg struct {
	gen  int
	time time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the tick interval. Zero or negative keeps the default.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithSamples replaces the historical chart samples.
func WithSamples(samples []vehicle.HistoricalSample) Option {
	return func(m *Model) {
		m.samples = samples
	}
}

// WithHistorySize sets how many rounds the trend sparklines keep.
func WithHistorySize(n int) Option {
	return func(m *Model) {
		m.history = NewHistory(n)
	}
}

// WithModelLogger sets the logger for dashboard events.
func WithModelLogger(l logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// NewModel creates a dashboard model driven by engine.
func NewModel(engine *sim.Engine, opts ...Option) Model {
	m := Model{
		engine:   engine,
		samples:  vehicle.HistoricalFixture(),
		history:  NewHistory(DefaultHistorySize),
		interval: sim.DefaultInterval,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.state = engine.State()
	m.history.Push(m.state.Health)
	return m
}

// State returns the state the model last rendered.
func (m Model) State() vehicle.State {
	return m.state
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Rounds returns how many mutation rounds the model has applied.
func (m Model) Rounds() int {
	return m.rounds
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	m.log.Info("dashboard started (interval %s)", m.interval)
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewportReady {
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tea.MouseMsg:
		if m.viewportReady {
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case tickMsg:
		if msg.gen != m.generation || m.paused || m.quitting {
			return m, nil
		}
		m.ticks++
		if s, ran := m.engine.Step(); ran {
			m.apply(s)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// tickCmd schedules the next tick under the current generation.
func (m Model) tickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, time: t}
	})
}

// apply records a committed round and refreshes the viewport.
func (m *Model) apply(s vehicle.State) {
	m.rounds++
	m.state = s
	m.history.Push(s.Health)
	m.refreshViewport()
}

// forceRound runs one mutation round outside the tick schedule.
func (m *Model) forceRound() {
	m.apply(m.engine.Mutate())
}

// togglePause stops or resumes the tick chain.
func (m *Model) togglePause() tea.Cmd {
	m.paused = !m.paused
	m.generation++
	if m.paused {
		m.log.Info("simulation paused after %d rounds", m.rounds)
		return nil
	}
	m.log.Info("simulation resumed")
	return m.tickCmd()
}

// quit cuts the tick chain and exits the program.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.generation++
	m.log.Info("dashboard stopped after %d ticks, %d rounds", m.ticks, m.rounds)
	return tea.Quit
}

func (m *Model) resizeViewport() {
	headerHeight := lipgloss.Height(renderHeader(m.frame())) + 1
	footerHeight := 2
	viewportHeight := m.height - headerHeight - footerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.viewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(renderBody(m.frame()))
}
