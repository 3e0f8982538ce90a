package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fireworks/internal/fireworks"
	"github.com/san-kum/fireworks/internal/metrics"
	"github.com/san-kum/fireworks/internal/raster"
	"github.com/san-kum/fireworks/internal/rng"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	panelWidth      = 34
	minCols         = 8
	minRows         = 4
	historyCapacity = 600
)

type TickMsg time.Time

// Options configure the live view.
type Options struct {
	FPS    int
	Scale  int
	Seed   int64
	Panel  bool
	Theme  string
	Logger *slog.Logger
}

// Model runs a show on a framebuffer and paints it into the terminal.
type Model struct {
	show        *fireworks.Show
	fb          *raster.Framebuffer
	canvas      *Canvas
	pop         *metrics.Population
	metrics     []metrics.Metric
	census      fireworks.Census
	fps         int
	scale       int
	panel       bool
	theme       Theme
	styles      panelStyles
	cols, rows  int
	lastTick    time.Time
	measuredFPS float64
	log         *slog.Logger
}

func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	theme := GetTheme(opts.Theme)
	pop, ms := metrics.Defaults(historyCapacity)
	fb := raster.New(0, 0)

	showOpts := []fireworks.Option{fireworks.WithLogger(opts.Logger)}
	for _, m := range ms {
		showOpts = append(showOpts, fireworks.WithObserver(m))
	}

	m := Model{
		show:    fireworks.New(fb, rng.New(opts.Seed), showOpts...),
		fb:      fb,
		pop:     pop,
		metrics: ms,
		fps:     opts.FPS,
		scale:   opts.Scale,
		panel:   opts.Panel,
		theme:   theme,
		styles:  newPanelStyles(theme),
		log:     opts.Logger,
	}
	m.resize(defaultCols, defaultRows)
	return m
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.fps)
}

// Update advances the show on every tick and re-arms the next one.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
				inst := 1 / dt
				if m.measuredFPS == 0 {
					m.measuredFPS = inst
				} else {
					m.measuredFPS = 0.9*m.measuredFPS + 0.1*inst
				}
			}
		}
		m.lastTick = now

		m.census = m.show.Tick()
		m.canvas.Sample(m.fb, m.scale, DefaultThreshold)
		return m, tick(m.fps)
	}
	return m, nil
}

// resize fits the canvas to a terminal of w x h cells. The framebuffer is
// reallocated, which clears it.
func (m *Model) resize(w, h int) {
	cols := w
	if m.panel {
		cols -= panelWidth
	}
	cols = max(cols, minCols)
	rows := max(h, minRows)
	if cols == m.cols && rows == m.rows {
		return
	}

	m.cols, m.rows = cols, rows
	m.canvas = NewCanvas(cols, rows)
	m.fb.Resize(cols*2*m.scale, rows*4*m.scale)
	fw, fh := m.fb.Bounds()
	m.log.Debug("resize", "cols", cols, "rows", rows, "surface_w", fw, "surface_h", fh)
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := m.canvas.Render()
	if !m.panel {
		return canvasView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.panelView())
}

func (m Model) panelView() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.header.Render(GradientText("FIREWORKS", m.theme.Primary, m.theme.Secondary)) + "\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.census.Frame))
	row("Rockets", fmt.Sprintf("%d", m.census.Rockets))
	row("Particles", fmt.Sprintf("%d", m.census.Particles))
	for _, mt := range m.metrics {
		switch mt.Name() {
		case "peak_population":
			row("Peak", fmt.Sprintf("%.0f", mt.Value()))
		case "launches":
			row("Launches", fmt.Sprintf("%.0f", mt.Value()))
		case "bursts":
			row("Bursts", fmt.Sprintf("%.0f", mt.Value()))
		}
	}
	row("FPS", fmt.Sprintf("%.1f / %d", m.measuredFPS, m.fps))
	fw, fh := m.fb.Bounds()
	row("Surface", fmt.Sprintf("%dx%d", fw, fh))

	if hist := m.pop.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist,
			asciigraph.Height(5),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption("live entities"),
		)
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-6, m.theme.Border) + "\n")
	s.WriteString(st.help.Render("q: quit"))
	return st.panel.Render(s.String())
}

// Census returns the counts from the latest tick.
func (m Model) Census() fireworks.Census { return m.census }

// Grid returns the canvas dimensions in cells.
func (m Model) Grid() (cols, rows int) { return m.cols, m.rows }

// Surface returns the framebuffer the show draws on.
func (m Model) Surface() *raster.Framebuffer { return m.fb }

// Run starts the live view and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
