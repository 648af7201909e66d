package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/orbitlab/sitnikov/internal/integrators"
	"github.com/orbitlab/sitnikov/internal/sitnikov"
)

const (
	graphWidth      = 64
	graphHeight     = 10
	historyCapacity = 600
	trailCapacity   = 512
	stepsPerTick    = 16
)

type TickMsg time.Time

// Live steps a trajectory and its shadow with the composed symplectic
// scheme while the incremental indicator accumulates MEGNO, and renders
// both as the run progresses.
type Live struct {
	model *sitnikov.Model
	ind   *sitnikov.Indicator

	x    integrators.State
	t    float64
	step int

	megno   float64
	mean    float64
	history []float64
	trailZ  []float64
	trailV  []float64

	running bool
	err     error
}

func NewLive(m *sitnikov.Model) Live {
	return Live{
		model:   m,
		ind:     sitnikov.NewIndicator(m),
		x:       m.ShadowState(),
		t:       m.StartTime(),
		history: make([]float64, 0, historyCapacity),
		running: true,
	}
}

func (l Live) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			if l.err == nil {
				l.running = !l.running
			}
		case "r":
			l.reset()
		}
	case TickMsg:
		if l.running {
			for i := 0; i < stepsPerTick && l.err == nil; i++ {
				l.advance()
			}
		}
		return l, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return l, nil
}

// advance moves the pair of trajectories one step and feeds the
// indicator.
func (l *Live) advance() {
	h := l.model.StepSize()
	buf, err := integrators.Yoshida4(l.model, l.x, l.t, h, 1)
	if err != nil {
		l.err = err
		l.running = false
		return
	}
	l.x = buf.State(1)
	l.t += h
	l.step++

	megno, mean, err := l.ind.Push(l.t, l.x[0], l.x[1]-l.x[0], l.x[3]-l.x[2])
	if err != nil {
		l.err = err
		l.running = false
		return
	}
	l.megno, l.mean = megno, mean
	l.history = append(l.history, megno)
	if len(l.history) > historyCapacity {
		l.history = l.history[1:]
	}
	l.trailZ = append(l.trailZ, l.x[0])
	l.trailV = append(l.trailV, l.x[2])
	if len(l.trailZ) > trailCapacity {
		l.trailZ = l.trailZ[1:]
		l.trailV = l.trailV[1:]
	}
}

func (l *Live) reset() {
	l.x = l.model.ShadowState()
	l.t = l.model.StartTime()
	l.step = 0
	l.ind = sitnikov.NewIndicator(l.model)
	l.megno, l.mean = 0, 0
	l.history = l.history[:0]
	l.trailZ = l.trailZ[:0]
	l.trailV = l.trailV[:0]
	l.err = nil
	l.running = true
}

func (l Live) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("SITNIKOV MEGNO") + "\n")
	switch {
	case l.err != nil:
		s.WriteString(errorStyle.Render("FAILED: "+l.err.Error()) + "\n")
	case l.running:
		s.WriteString(statusRunning.Render("RUNNING") + "\n")
	default:
		s.WriteString(statusPaused.Render("PAUSED") + "\n")
	}
	if len(l.history) > 1 {
		chart := asciigraph.Plot(l.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("MEGNO"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(l.trailZ) > 1 {
		portrait := strings.TrimRight(Scatter(l.trailZ, l.trailV, graphWidth/2, 8), "\n")
		s.WriteString(graphStyle.Render(portrait+"\n"+"phase (z, v)") + "\n")
	}
	deltaZ := l.x[1] - l.x[0]
	deltaV := l.x[3] - l.x[2]
	rows := []struct{ label, value string }{
		{"Time", fmt.Sprintf("%.2f", l.t)},
		{"Periods", fmt.Sprintf("%.2f", l.t/(2*math.Pi))},
		{"Steps", fmt.Sprintf("%d", l.step)},
		{"z", fmt.Sprintf("%+.4f", l.x[0])},
		{"Separation", fmt.Sprintf("%.3e", math.Hypot(deltaZ, deltaV))},
		{"MEGNO", fmt.Sprintf("%.4f", l.megno)},
		{"Mean MEGNO", fmt.Sprintf("%.4f", l.mean)},
	}
	for _, row := range rows {
		s.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit"))
	return s.String()
}
