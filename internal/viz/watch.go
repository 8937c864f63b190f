package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pressim/internal/sim"
)

const (
	chartWidth  = 60
	chartHeight = 10
	// energyWindow bounds how much of the trace is drawn.
	energyWindow = 600
)

type TickMsg time.Time

// Watch steps a simulator and renders it. Only the Bubble Tea update loop
// touches the simulator.
type Watch struct {
	sim          *sim.Simulator
	stepsPerTick int
	interval     time.Duration
	running      bool
	quitting     bool
}

// NewWatch builds the model; fps sets the redraw rate.
func NewWatch(s *sim.Simulator, fps int) Watch {
	if fps <= 0 {
		fps = 30
	}
	steps := s.Config().Steps / (10 * fps)
	if steps < 1 {
		steps = 1
	}
	return Watch{
		sim:          s,
		stepsPerTick: steps,
		interval:     time.Second / time.Duration(fps),
		running:      true,
	}
}

func (m Watch) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Watch) Init() tea.Cmd {
	return m.tick()
}

func (m Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
			m.running = true
		}
		return m, nil
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Watch) advance() {
	for i := 0; i < m.stepsPerTick && !m.sim.Done(); i++ {
		m.sim.Step()
	}
}

// Downsample reduces values to at most n points by striding.
func Downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	stride := float64(len(values)-1) / float64(n-1)
	for i := range out {
		out[i] = values[int(float64(i)*stride+0.5)]
	}
	return out
}

func (m Watch) status() string {
	switch {
	case m.sim.Done():
		return StatusDone.Render("DONE")
	case m.running:
		return StatusRunning.Render("RUNNING")
	default:
		return StatusPaused.Render("PAUSED")
	}
}

func (m Watch) View() string {
	if m.quitting {
		return ""
	}

	cfg := m.sim.Config()
	energy := m.sim.Energy()
	density := m.sim.Density()

	var s strings.Builder
	s.WriteString(HeaderStyle.Render("INFORMATIONAL PRESSURE") + "\n")
	s.WriteString(m.status() + "\n\n")

	profile := asciigraph.Plot(Downsample(density, chartWidth),
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("density I(x)"),
	)
	panels := []string{GlassPanel.Render(profile)}

	if len(energy) > 1 {
		window := energy
		if len(window) > energyWindow {
			window = window[len(window)-energyWindow:]
		}
		trace := asciigraph.Plot(Downsample(window, chartWidth),
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption("energy"),
		)
		panels = append(panels, GlassPanel.Render(trace))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n\n")

	current := 0.0
	if len(energy) > 0 {
		current = energy[len(energy)-1]
	}
	s.WriteString(MetricLabel.Render("step") + MetricValue.Render(fmt.Sprintf("%d / %d", m.sim.StepsTaken(), cfg.Steps)) + "\n")
	s.WriteString(MetricLabel.Render("energy") + MetricValue.Render(fmt.Sprintf("%.6g", current)) + "\n")
	s.WriteString(MetricLabel.Render("mass") + MetricValue.Render(fmt.Sprintf("%.6g", density.Sum())) + "\n")
	s.WriteString(MetricLabel.Render("min") + MetricValue.Render(fmt.Sprintf("%.3g", density.Min())) + "\n")
	s.WriteString(MetricLabel.Render("lr") + MetricValue.Render(fmt.Sprintf("%g", cfg.LR)) + "\n")
	s.WriteString("\n" + KeyHint.Render("SPACE:Pause  R:Reset  Q:Quit") + "\n")
	return s.String()
}
