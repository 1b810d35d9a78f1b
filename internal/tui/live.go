package tui

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avaldr/morphogen/internal/field"
)

const (
	viewWidth       = 64
	viewHeight      = 28
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

// shades maps luminance to terminal cells, darkest to brightest.
var shades = []rune(" ░▒▓█")

type TickMsg time.Time

// Model renders a field source in the terminal with runtime parameter
// control.
type Model struct {
	src           field.Source
	modelName     string
	fps           int
	running       bool
	frames        int
	grid          *field.Grid // borrowed from src, valid until the next advance
	meanHistory   []float64
	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	recording     bool
	gifFrames     []*image.Paletted
	showHelp      bool
}

// NewModel wraps a source for terminal display at the given frame rate.
func NewModel(src field.Source, modelName string, fps int) Model {
	params := make(map[string]float64)
	if t, ok := src.(field.Tunable); ok {
		for k, v := range t.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			v = 1e-6
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	if fps <= 0 {
		fps = 30
	}
	return Model{
		src:           src,
		modelName:     modelName,
		fps:           fps,
		running:       true,
		meanHistory:   make([]float64, 0, historyCapacity),
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the source.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.gifFrames = nil
			} else {
				m.recording = true
				m.gifFrames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		if m.recording && m.grid != nil {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	m.grid = m.src.Advance()
	m.frames++

	s := m.grid.Stats()
	m.meanHistory = append(m.meanHistory, s.Mean)
	if len(m.meanHistory) > historyCapacity {
		m.meanHistory = m.meanHistory[1:]
	}
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	m.params[key] = newVal
	if t, ok := m.src.(field.Tunable); ok {
		t.SetParam(key, newVal)
	}
}

// reset reseeds the source and restores the initial parameters.
func (m *Model) reset() {
	for k, v := range m.initialParams {
		m.params[k] = v
		if t, ok := m.src.(field.Tunable); ok {
			t.SetParam(k, v)
		}
	}
	if r, ok := m.src.(field.Resettable); ok {
		r.Reset()
	}
	m.frames = 0
	m.meanHistory = m.meanHistory[:0]
}

// shadeFor maps one sample to its terminal cell.
func shadeFor(v float32) rune {
	return shades[int(field.Luma(v))*len(shades)/256]
}

// fieldView downsamples the grid to a block of shade runes.
func (m Model) fieldView() string {
	if m.grid == nil {
		return strings.Repeat(strings.Repeat(" ", viewWidth)+"\n", viewHeight)
	}
	g := m.grid
	var b strings.Builder
	b.Grow((viewWidth + 1) * viewHeight)
	for row := 0; row < viewHeight; row++ {
		y := row * g.H / viewHeight
		for col := 0; col < viewWidth; col++ {
			x := col * g.W / viewWidth
			b.WriteRune(shadeFor(g.At(x, y)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// View renders the field beside the stats sidebar.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.fieldView())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.modelName)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += "  ● REC"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.meanHistory) > 1 {
		chart := asciigraph.Plot(m.meanHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Mean"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")
	if m.grid != nil {
		st := m.grid.Stats()
		s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", m.grid.W, m.grid.H)) + "\n")
		s.WriteString(labelStyle.Render("Min") + valueStyle.Render(fmt.Sprintf("%.4f", st.Min)) + "\n")
		s.WriteString(labelStyle.Render("Mean") + valueStyle.Render(fmt.Sprintf("%.4f", st.Mean)) + "\n")
		s.WriteString(labelStyle.Render("Max") + valueStyle.Render(fmt.Sprintf("%.4f", st.Max)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.params) > 0 {
		for i, k := range m.paramKeys {
			val, initial := m.params[k], m.initialParams[k]
			barWidth, ratio := 10, val/(2.0*initial)
			if ratio > 1 {
				ratio = 1
			} else if ratio < 0 {
				ratio = 0
			}
			filled := int(ratio * float64(barWidth))
			bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
			line := fmt.Sprintf("%-12s %s %.4g", k, bar, val)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Param ↑↓:Tune\nG:Record ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reseed the field         ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// captureFrame stores the current grid as a paletted GIF frame at native
// resolution.
func (m *Model) captureFrame() {
	g := m.grid
	img := image.NewPaletted(image.Rect(0, 0, g.W, g.H), grayPalette)
	for i, v := range g.Data {
		img.Pix[i] = field.Luma(v)
	}
	m.gifFrames = append(m.gifFrames, img)
}

func (m *Model) saveGIF() {
	if len(m.gifFrames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	delay := 100 / m.fps
	if delay < 2 {
		delay = 2
	}
	for _, frame := range m.gifFrames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create("morphogen.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
