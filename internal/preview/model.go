package preview

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/export"
	"github.com/acousticcorner/channel/internal/surface"
)

const (
	defaultCols = 80
	defaultRows = 24
	// Rows reserved for the header and help lines.
	chromeRows = 3
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb86b")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ce99a")).Bold(true)
	recStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type TickMsg time.Time

// Starter begins an intro on host and canvas.
type Starter func(host anim.Host, c *surface.Canvas) *anim.Completion

// Options configure a preview.
type Options struct {
	Title string
	// Status is shown once the intro has finished.
	Status   string
	FPS      int
	AutoQuit bool
	// Store receives recordings made with the "g" key; nil disables it.
	Store  *export.Store
	Intro  string
	Logger *slog.Logger
	// Clock defaults to the system clock.
	Clock anim.Clock
}

// Model is a bubbletea model hosting one intro.
type Model struct {
	opts   Options
	start  Starter
	clock  anim.Clock
	sched  *anim.ManualScheduler
	hub    *anim.ResizeHub
	target *surface.Fixed
	canvas *surface.Canvas
	done   *anim.Completion

	cols, rows int
	finished   bool
	recording  bool
	rec        *export.Recording
	saved      string
	err        error
}

func NewModel(start Starter, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Clock == nil {
		opts.Clock = anim.SystemClock{}
	}
	m := &Model{
		opts:  opts,
		start: start,
		clock: opts.Clock,
		sched: anim.NewManualScheduler(),
		hub:   anim.NewResizeHub(),
		cols:  defaultCols,
		rows:  defaultRows,
	}
	m.target = surface.NewFixed(float64(m.cols*CellWidth), float64(m.pixelRows()*CellHeight/2), 1)
	m.canvas = surface.New(m.target)
	return m
}

func (m *Model) host() anim.Host {
	return anim.Host{Clock: m.clock, Scheduler: m.sched, Viewport: m.hub, Logger: m.opts.Logger}
}

func (m *Model) pixelRows() int { return max(1, m.rows-chromeRows) * 2 }

// Done exposes the running intro's completion; nil before Init.
func (m *Model) Done() *anim.Completion { return m.done }

func (m *Model) Init() tea.Cmd {
	m.restart()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) restart() {
	m.finished = false
	m.done = m.start(m.host(), m.canvas)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.finished {
				m.restart()
			}
		case "g":
			m.toggleRecording()
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = max(1, msg.Width), max(chromeRows+1, msg.Height)
		m.target.SetBox(float64(m.cols*CellWidth), float64(m.pixelRows()*CellHeight/2))
		m.hub.Notify()
	case TickMsg:
		if m.sched.Tick(time.Time(msg)) > 0 && m.recording && !m.done.Resolved() {
			m.rec.Frames = append(m.rec.Frames, m.canvas.Snapshot())
		}
		if !m.finished && m.done != nil && m.done.Resolved() {
			m.finished = true
			if m.opts.AutoQuit {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) toggleRecording() {
	if m.opts.Store == nil {
		return
	}
	if !m.recording {
		m.recording = true
		m.rec = &export.Recording{Delay: time.Second / time.Duration(m.opts.FPS)}
		return
	}
	m.recording = false
	met := m.canvas.Metrics()
	id, err := m.opts.Store.Save(export.RunMetadata{
		Intro:  m.opts.Intro,
		Label:  m.opts.Title,
		FPS:    m.opts.FPS,
		Width:  met.Width,
		Height: met.Height,
		Ratio:  met.Ratio,
	}, m.rec)
	m.saved, m.err = id, err
	m.rec = nil
}

func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.opts.Title)))
	switch {
	case m.recording:
		s.WriteString("  " + recStyle.Render(fmt.Sprintf("REC %d", len(m.rec.Frames))))
	case m.finished:
		status := m.opts.Status
		if status == "" {
			status = "Playing now."
		}
		s.WriteString("  " + statusStyle.Render(status))
	}
	s.WriteString("\n")
	s.WriteString(Cells(m.canvas.Image(), m.cols, m.pixelRows()/2))
	s.WriteString("\n")

	help := "q quit"
	if m.opts.Store != nil {
		help += " • g record"
	}
	if m.finished {
		help += " • r replay"
	}
	switch {
	case m.err != nil:
		help += " • save failed: " + m.err.Error()
	case m.saved != "":
		help += " • saved " + m.saved
	}
	s.WriteString(helpStyle.Render(help))
	return s.String()
}

// Run starts a full-screen program and blocks until it exits.
func Run(start Starter, opts Options) error {
	m := NewModel(start, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
