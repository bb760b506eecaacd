package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/projsim/internal/viz"
)

const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Replay steps through a recorded flight one frame per tick.
type Replay struct {
	title  string
	frames []Frame

	cursor int
	speed  int
	paused bool

	width  int
	height int
}

func NewReplay(title string, frames []Frame) Replay {
	return Replay{
		title:  title,
		frames: frames,
		speed:  1,
		width:  80,
		height: 24,
	}
}

func (m Replay) Init() tea.Cmd { return tick() }

func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused && !m.done() {
			m.cursor = min(m.cursor+m.speed, len(m.frames)-1)
		}
		return m, tick()
	}
	return m, nil
}

func (m Replay) handleKey(msg tea.KeyMsg) (Replay, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.cursor = 0
	case "+", "=":
		m.speed = min(m.speed*2, 64)
	case "-", "_":
		m.speed = max(m.speed/2, 1)
	case "right", "l":
		m.cursor = min(m.cursor+1, max(len(m.frames)-1, 0))
	case "left", "h":
		m.cursor = max(m.cursor-1, 0)
	case "end", "G":
		m.cursor = max(len(m.frames)-1, 0)
	}
	return m, nil
}

func (m Replay) done() bool {
	return m.cursor >= len(m.frames)-1
}

func (m Replay) Cursor() int  { return m.cursor }
func (m Replay) Paused() bool { return m.paused }
func (m Replay) Speed() int   { return m.speed }

func (m Replay) View() string {
	if len(m.frames) == 0 {
		return "\n   " + viz.Warning.Render("no samples to replay") + "\n"
	}

	cw := max(m.width-6, 50)
	ch := max(m.height-12, 12)
	c := newCanvas(cw, ch)
	drawFlight(c, m.frames, m.cursor)

	f := m.frames[m.cursor]
	last := m.frames[len(m.frames)-1]

	var b strings.Builder

	status := viz.StatusRunning.Render("● playing")
	switch {
	case m.paused:
		status = viz.StatusPaused.Render("○ paused")
	case m.done():
		status = viz.Subtle.Render("■ finished")
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s  %s\n", viz.Title.Render(m.title), status, viz.Subtle.Render(fmt.Sprintf("x%d", m.speed))))

	progress := 1.0
	if len(m.frames) > 1 {
		progress = float64(m.cursor) / float64(len(m.frames)-1)
	}
	timeStr := fmt.Sprintf("%.1fs/%.1fs", f.T, last.T)
	b.WriteString(fmt.Sprintf("   %s %s\n\n", viz.ProgressBar(progress, 36), viz.Subtle.Render(timeStr)))

	for _, row := range c.rows() {
		b.WriteString("   " + row + "\n")
	}

	b.WriteString("\n   ")
	for _, kv := range []struct {
		label string
		value float64
	}{
		{"x", f.Position.X}, {"y", f.Position.Y}, {"z", f.Position.Z}, {"|v|", f.Speed},
	} {
		b.WriteString(viz.MetricLabel.Render(kv.label + "="))
		b.WriteString(viz.MetricValue.Render(fmt.Sprintf("%.2f", kv.value)))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	alt := make([]float64, m.cursor+1)
	for i := range alt {
		alt[i] = m.frames[i].Position.Z
	}
	if len(alt) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", viz.MetricLabel.Render("z"), viz.Sparkline(alt, 24)))
	}

	b.WriteString("\n" + viz.KeyHint.Render("   space pause  ←→ step  ±speed  r restart  q quit") + "\n")
	return b.String()
}

// Run replays frames full-screen until the user quits.
func Run(title string, frames []Frame) error {
	p := tea.NewProgram(NewReplay(title, frames), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
