package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/trajectory"
)

const (
	canvasWidth  = 90
	canvasHeight = 26
)

type tickMsg time.Time

// Model animates a solved sweep: the gondola rides from sample to
// sample while the rope redraws as the piecewise two-arc shape of the
// current equilibrium. All physics is pre-computed; playback only
// indexes into the sweep result.
type Model struct {
	sys    rope.System
	result *trajectory.Result
	canvas *Canvas

	frame   int
	playing bool
	fps     int
}

func NewModel(sys rope.System, result *trajectory.Result, fps int) Model {
	if fps <= 0 {
		fps = 30
	}

	yMin := result.Loaded.MinY()
	if u := result.Unloaded.MinY(); u < yMin {
		yMin = u
	}
	yMax := result.Unloaded.MaxY()
	if sys.Rise > yMax {
		yMax = sys.Rise
	}
	pad := 0.05 * (yMax - yMin)

	return Model{
		sys:     sys,
		result:  result,
		canvas:  NewCanvas(canvasWidth, canvasHeight, -0.02*sys.Span, 1.02*sys.Span, yMin-pad, yMax+pad),
		playing: true,
		fps:     fps,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
		case "left", "h":
			m.playing = false
			m.frame--
			if m.frame < 0 {
				m.frame = 0
			}
		case "right", "l":
			m.playing = false
			m.frame++
			if m.frame >= len(m.result.Configs) {
				m.frame = len(m.result.Configs) - 1
			}
		}
	case tickMsg:
		if m.playing {
			m.frame++
			if m.frame >= len(m.result.Configs) {
				m.frame = 0
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.result.Configs) == 0 {
		return "no converged samples to animate\n"
	}
	cfg := m.result.Configs[m.frame]

	m.canvas.Clear()
	m.canvas.PlotDots(m.result.Unloaded.X, m.result.Unloaded.Y)
	m.canvas.PlotCurve(m.result.Loaded.X[:m.frame+1], m.result.Loaded.Y[:m.frame+1])

	shape := trajectory.Shape(cfg, m.sys.Span, 30)
	m.canvas.PlotCurve(shape.X, shape.Y)

	m.canvas.Marker(0, 0)
	m.canvas.Marker(m.sys.Span, m.sys.Rise)
	m.canvas.Marker(cfg.XG, cfg.YG)

	status := "RUNNING"
	if !m.playing {
		status = "PAUSED"
	}

	stats := []string{
		statusStyle.Render(status),
		"",
		row("span", fmt.Sprintf("%.0f m", m.sys.Span)),
		row("rise", fmt.Sprintf("%.0f m", m.sys.Rise)),
		row("rope length", fmt.Sprintf("%.0f m", m.sys.Length)),
		row("density", fmt.Sprintf("%.1f kg/m", m.sys.Density)),
		row("gondola", fmt.Sprintf("%.0f kg", m.sys.GondolaMass)),
		row("tension", fmt.Sprintf("%.1f kN", m.sys.TensionH/1000)),
		"",
		row("x", fmt.Sprintf("%.1f m", cfg.XG)),
		row("y", fmt.Sprintf("%.2f m", cfg.YG)),
		row("iterations", fmt.Sprintf("%d", cfg.Iterations)),
		row("residual", fmt.Sprintf("%.2e", cfg.Residual)),
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("ROPEWAY SWEEP") + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(strings.Join(stats, "\n")),
	))
	b.WriteString(helpStyle.Render("\nspace pause · ←/→ scrub · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// RunLive starts the animation in the alternate screen.
func RunLive(sys rope.System, result *trajectory.Result, fps int) error {
	p := tea.NewProgram(NewModel(sys, result, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
