package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/shapes"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	panelWidth      = 34
	historyCapacity = 120
	scrollStep      = 0.05
)

// FrameMsg drives one frame of the render loop.
type FrameMsg time.Time

// Shifter changes the morph target on demand.
type Shifter interface {
	Tick()
}

// Engine is the morph engine surface the view reads and advances.
type Engine interface {
	Advance(dt float64) bool
	ReadVisible(fn func(shapes.PointCloud))
	Progress() float64
	Transitioning() bool
	ActiveName() string
	Points() int
}

var _ Engine = (*morph.Engine)(nil)

type Options struct {
	FPS   int
	Theme string
	Width int // terminal columns before the first resize event
}

// Model is the Bubble Tea render driver for a morph engine.
type Model struct {
	engine   Engine
	shifter  Shifter
	frame    time.Duration
	canvas   *Canvas
	camera   *Camera
	viewport Viewport
	theme    Theme

	last     time.Time
	elapsed  float64
	dt       float64
	scroll   float64
	pointerX float64
	pointerY float64
	pointer  bool
	paused   bool
	frames   int
	history  []float64
}

func NewModel(engine Engine, shifter Shifter, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	cam := NewCamera()
	vp := ViewportFor(opts.Width)
	cam.Distance = vp.Distance
	return Model{
		engine:   engine,
		shifter:  shifter,
		frame:    time.Second / time.Duration(opts.FPS),
		canvas:   NewCanvas(canvasSize(opts.Width, defaultHeight)),
		camera:   cam,
		viewport: vp,
		theme:    GetTheme(opts.Theme),
		history:  make([]float64, 0, historyCapacity),
	}
}

func canvasSize(cols, rows int) (int, int) {
	return max(cols-panelWidth-2, 10), max(rows-2, 5)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the morph once per frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas = NewCanvas(canvasSize(msg.Width, msg.Height))
		m.viewport = ViewportFor(msg.Width)
		m.camera.Distance = m.viewport.Distance
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			if m.shifter != nil {
				m.shifter.Tick()
			}
		case "t":
			m.theme = NextTheme(m.theme)
		case "pgup", "up", "k":
			m.setScroll(m.scroll - scrollStep)
		case "pgdown", "down", "j":
			m.setScroll(m.scroll + scrollStep)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.setScroll(m.scroll - scrollStep)
		case msg.Button == tea.MouseButtonWheelDown:
			m.setScroll(m.scroll + scrollStep)
		case msg.Action == tea.MouseActionMotion:
			m.pointAt(msg.X, msg.Y)
		}
	case FrameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		if !m.paused {
			m.step(m.dt)
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the engine and the rotation by dt seconds.
func (m *Model) step(dt float64) {
	m.elapsed += dt
	m.frames++
	m.engine.Advance(dt)

	scroll := m.scroll
	if m.viewport.Narrow {
		scroll = 0
	}
	m.camera.Rot.X, m.camera.Rot.Y = Rotation(Input{
		Elapsed:    m.elapsed,
		Dt:         dt,
		Scroll:     scroll,
		PointerX:   m.pointerX,
		PointerY:   m.pointerY,
		HasPointer: m.pointer,
	})

	m.history = append(m.history, m.engine.Progress())
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) setScroll(v float64) {
	m.scroll = max(0, min(1, v))
}

// pointAt maps a terminal cell to pointer coordinates in [-1,1], y up.
func (m *Model) pointAt(col, row int) {
	w, h := m.canvas.Width, m.canvas.Height
	m.pointerX = max(-1, min(1, float64(col)/float64(w)*2-1))
	m.pointerY = max(-1, min(1, 1-float64(row)/float64(h)*2))
	m.pointer = true
}

func (m Model) View() string {
	m.engine.ReadVisible(func(pc shapes.PointCloud) {
		RenderCloud(m.canvas, pc, m.camera)
	})

	particles := lipgloss.NewStyle().Foreground(m.theme.Particles)
	header := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).MarginBottom(1)
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(10)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(0, 2).
		Width(panelWidth)

	status := "MORPHING"
	switch {
	case m.paused:
		status = "PAUSED"
	case !m.engine.Transitioning():
		status = "RESTING"
	}

	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(m.engine.ActiveName())) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(label.Render("Progress") + value.Render(progressBar(m.engine.Progress(), 14)) + "\n")
	s.WriteString(label.Render("Points") + value.Render(fmt.Sprintf("%d", m.engine.Points())) + "\n")
	s.WriteString(label.Render("Drawn") + value.Render(fmt.Sprintf("%d", m.canvas.Hits())) + "\n")
	s.WriteString(label.Render("Scroll") + value.Render(fmt.Sprintf("%.2f", m.scroll)) + "\n")
	s.WriteString(label.Render("Time") + value.Render(fmt.Sprintf("%.1fs", m.elapsed)) + "\n")
	if m.dt > 0 {
		s.WriteString(label.Render("FPS") + value.Render(fmt.Sprintf("%.0f", 1/m.dt)) + "\n")
	}
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Caption("progress"))
		s.WriteString("\n" + value.Render(chart) + "\n")
	}
	help := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)
	s.WriteString(help.Render("SP:Pause N:Next T:Theme\nPgUp/PgDn:Scroll +/-:Zoom Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, particles.Render(m.canvas.String()), panel.Render(s.String()))
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// RunLive runs the render driver until the user quits.
func RunLive(engine Engine, shifter Shifter, opts Options) error {
	p := tea.NewProgram(NewModel(engine, shifter, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
