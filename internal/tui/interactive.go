package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/structviz/internal/config"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/structures"
	"github.com/san-kum/structviz/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type screen int

const (
	screenMenu screen = iota
	screenConfig
	screenViz
)

// frameCapture keeps the latest rendered frame for View to draw. The
// playback controller pushes frames; bubbletea pulls them.
type frameCapture struct {
	values     []int
	highlights step.HighlightMap
}

func (f *frameCapture) Render(live []int, h step.HighlightMap) {
	f.values = live
	f.highlights = h
}

type model struct {
	screen   screen
	cursor   int
	algos    []step.Algorithm
	selected step.Algorithm

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	arr     *structures.Array
	capture *frameCapture
	delays  playback.Delays
	speed   float64
	counter step.Counter
	prevPos int

	width  int
	height int
}

func NewInteractiveApp(cfg *config.Config) *model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &model{
		screen: screenMenu,
		algos:  step.Algorithms(),
		params: map[string]float64{
			"size":  float64(cfg.Size),
			"speed": cfg.Speed,
			"seed":  float64(cfg.Seed),
		},
		paramNames: []string{"size", "speed", "seed"},
		delays:     cfg.PlaybackDelays(),
		speed:      1.0,
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

// tick schedules the next playback step after d. Each step kind carries its
// own pacing, so the cadence is per-step rather than fixed.
func tick(d time.Duration) tea.Cmd {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenViz || m.arr == nil {
			return m, nil
		}
		ctrl := m.arr.Controller()
		if ctrl.State() != playback.Playing {
			return m, nil
		}
		ctrl.Tick(context.Background())
		m.observeApplied()
		if ctrl.State() == playback.Playing {
			return m, tick(m.nextDelay())
		}
		return m, nil
	}
	return m, nil
}

// observeApplied feeds newly applied steps into the operation counter.
func (m *model) observeApplied() {
	ctrl := m.arr.Controller()
	if ctrl.Pos() > m.prevPos {
		if s, ok := ctrl.Last(); ok {
			m.counter.Observe(s)
		}
		m.prevPos = ctrl.Pos()
	}
}

// nextDelay is the pacing for the upcoming step, scaled by the live speed.
func (m *model) nextDelay() time.Duration {
	kind, ok := m.arr.Controller().NextKind()
	if !ok {
		return 50 * time.Millisecond
	}
	d := m.delays.For(kind)
	return time.Duration(float64(d) / m.speed)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		return m.menuKey(msg)
	case screenConfig:
		return m.configKey(msg)
	case screenViz:
		return m.vizKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algos)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.algos[m.cursor]
		m.screen = screenConfig
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.screen = screenMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		m.adjustParam(-1)
	case "right", "l":
		m.adjustParam(1)
	case "s":
		m.start()
		m.screen = screenViz
		var cmd tea.Cmd
		if m.arr.Controller().Play() == nil {
			cmd = tick(m.nextDelay())
		}
		return m, tea.Batch(tea.ClearScreen, cmd)
	}
	return m, nil
}

func (m *model) adjustParam(dir float64) {
	name := m.paramNames[m.paramCursor]
	stepBy := 1.0
	if name == "speed" {
		stepBy = 0.25
	}
	m.params[name] += dir * stepBy
	if name == "size" {
		if m.params[name] < float64(structures.MinArraySize) {
			m.params[name] = float64(structures.MinArraySize)
		}
		if m.params[name] > float64(structures.MaxArraySize) {
			m.params[name] = float64(structures.MaxArraySize)
		}
	}
	if name == "speed" && m.params[name] < 0.25 {
		m.params[name] = 0.25
	}
}

// start builds a fresh array from the configured size and seed, records the
// selected sort over it, and loads the run.
func (m *model) start() {
	m.capture = &frameCapture{}
	// The tick loop paces playback; the delayer itself must not block.
	m.arr = structures.NewArray(nil, m.capture, nil, &playback.InstantDelayer{}, m.delays)

	size := int(m.params["size"])
	seed := int64(m.params["seed"])
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.arr.Randomize(size, seed)
	m.arr.PrepareSort(m.selected)

	if sp := m.params["speed"]; sp > 0 {
		m.speed = sp
	} else {
		m.speed = 1.0
	}
	m.counter.Reset()
	m.prevPos = 0
}

func (m model) vizKey(msg tea.KeyMsg) (model, tea.Cmd) {
	ctrl := m.arr.Controller()
	switch msg.String() {
	case "q", "escape":
		m.screen = screenMenu
		if ctrl.State() == playback.Playing {
			ctrl.Pause()
		}
		return m, tea.ClearScreen
	case "c":
		if ctrl.State() == playback.Playing {
			ctrl.Pause()
		}
		m.screen = screenConfig
		return m, tea.ClearScreen
	case " ", "p":
		if ctrl.State() == playback.Playing {
			ctrl.Pause()
			return m, nil
		}
		if ctrl.Play() == nil && ctrl.State() == playback.Playing {
			return m, tick(m.nextDelay())
		}
	case "n":
		if ctrl.State() != playback.Playing {
			ctrl.StepOnce(context.Background())
			m.observeApplied()
		}
	case "r":
		m.start()
		var cmd tea.Cmd
		if ctrl := m.arr.Controller(); ctrl.Play() == nil && ctrl.State() == playback.Playing {
			cmd = tick(m.nextDelay())
		}
		return m, tea.Batch(tea.ClearScreen, cmd)
	case "+", "=":
		if m.speed < 16 {
			m.speed *= 2
		}
	case "-", "_":
		if m.speed > 0.25 {
			m.speed /= 2
		}
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenConfig:
		return m.viewConfig()
	case screenViz:
		return m.viewViz()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("s t r u c t v i z") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, algo := range m.algos {
		desc := step.Describe(algo)
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", algo)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", algo)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(string(m.selected)) + "  " + dim.Render(step.Describe(m.selected)) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.2f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func (m model) viewViz() string {
	ctrl := m.arr.Controller()

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render(ctrl.State().String())
	switch ctrl.State() {
	case playback.Paused:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	case playback.Idle:
		statusIcon = dim.Render("○")
		statusText = dim.Render("idle")
	case playback.Complete:
		statusIcon = green.Render("✓")
		statusText = green.Render("sorted")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(string(m.selected)), statusText,
		dim.Render(fmt.Sprintf("%.2gx", m.speed))))

	total := ctrl.Len()
	pos := ctrl.Pos()
	progress := 0.0
	if total > 0 {
		progress = float64(pos) / float64(total)
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	posStr := fmt.Sprintf("%d/%d", pos, total)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s\n\n", bar, dim.Render(posStr)))

	values := m.capture.values
	if values == nil {
		values = m.arr.Values()
	}
	b.WriteString(viz.ArrayFrame(values, m.capture.highlights))

	if s, ok := ctrl.Last(); ok {
		b.WriteString("\n   " + dim.Render(s.Narration()) + "\n")
	} else {
		b.WriteString("\n")
	}

	counts := m.counter.ByName()
	if len(counts) > 0 {
		b.WriteString(fmt.Sprintf("   %s %d  %s %d  %s %d\n",
			dim.Render("compares"), counts["compare"],
			dim.Render("swaps"), counts["swap"],
			dim.Render("moves"), counts["shift"]+counts["insert"]))
	}

	b.WriteString("\n" + dim.Render("   space pause  n step  ±speed  r reshuffle  c config  q back") + "\n")

	return b.String()
}

// RunInteractive starts the full-screen app.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewInteractiveApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
