package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/sitnikov"
)

const (
	stagePresets = iota
	stageParams
	stageLive
)

type presetEntry struct {
	family, name string
	cfg          *config.Config
}

// Explore is a Bubble Tea model that walks from a preset picker through
// a scenario editor into the live view. Escape climbs back one stage.
type Explore struct {
	stage   int
	cursor  int
	presets []presetEntry
	chosen  presetEntry

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string
	status      string

	live Live
}

func NewExplore() Explore {
	var entries []presetEntry
	for _, family := range config.ListFamilies() {
		for _, name := range config.ListPresets(family) {
			entries = append(entries, presetEntry{family, name, config.GetPreset(family, name)})
		}
	}
	return Explore{
		presets:    entries,
		params:     map[string]float64{},
		paramNames: []string{"eccentricity", "tau", "z0", "v0", "step", "periods"},
	}
}

func (e Explore) Init() tea.Cmd { return nil }

func (e Explore) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch e.stage {
		case stagePresets:
			return e.presetsKey(msg)
		case stageParams:
			return e.paramsKey(msg)
		case stageLive:
			if msg.String() == "esc" {
				e.stage = stageParams
				return e, nil
			}
			return e.forward(msg)
		}
	default:
		if e.stage == stageLive {
			return e.forward(msg)
		}
	}
	return e, nil
}

func (e Explore) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := e.live.Update(msg)
	e.live = next.(Live)
	return e, cmd
}

func (e Explore) presetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.presets)-1 {
			e.cursor++
		}
	case "enter", " ":
		e.chosen = e.presets[e.cursor]
		e.params["eccentricity"] = e.chosen.cfg.Eccentricity
		e.params["tau"] = e.chosen.cfg.Tau
		e.params["z0"] = e.chosen.cfg.Z0
		e.params["v0"] = e.chosen.cfg.V0
		e.params["step"] = e.chosen.cfg.Step
		e.params["periods"] = float64(e.chosen.cfg.Periods)
		e.stage, e.paramCursor, e.status = stageParams, 0, ""
	}
	return e, nil
}

func (e Explore) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if e.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(e.editBuf, 64); err == nil {
				e.params[e.paramNames[e.paramCursor]] = v
			}
			e.editing, e.editBuf = false, ""
		case "esc":
			e.editing, e.editBuf = false, ""
		case "backspace":
			if len(e.editBuf) > 0 {
				e.editBuf = e.editBuf[:len(e.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 {
				if c := s[0]; (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					e.editBuf += s
				}
			}
		}
		return e, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return e, tea.Quit
	case "q", "esc":
		e.stage = stagePresets
	case "up", "k":
		if e.paramCursor > 0 {
			e.paramCursor--
		}
	case "down", "j":
		if e.paramCursor < len(e.paramNames)-1 {
			e.paramCursor++
		}
	case "left", "h":
		e.adjust(-1)
	case "right", "l":
		e.adjust(1)
	case "enter":
		e.editing = true
		e.editBuf = strconv.FormatFloat(e.params[e.paramNames[e.paramCursor]], 'g', -1, 64)
	case "s", " ":
		return e.start()
	}
	return e, nil
}

// adjust nudges the selected parameter. The step halves or doubles so
// that 4/step stays integral, everything else moves by a fixed delta.
func (e Explore) adjust(dir float64) {
	name := e.paramNames[e.paramCursor]
	v := e.params[name]
	switch name {
	case "step":
		if dir > 0 {
			v = math.Min(v*2, 0.1)
		} else {
			v /= 2
		}
	case "eccentricity", "tau":
		v = clamp(v+dir*0.05, 0, 0.95)
	case "periods":
		v = math.Max(v+dir*100, 1)
	default:
		v += dir * 0.1
	}
	e.params[name] = v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func (e Explore) start() (tea.Model, tea.Cmd) {
	c := *e.chosen.cfg
	c.Eccentricity = e.params["eccentricity"]
	c.Tau = e.params["tau"]
	c.Z0 = e.params["z0"]
	c.V0 = e.params["v0"]
	c.Step = e.params["step"]
	c.Periods = int(math.Round(e.params["periods"]))
	m, err := sitnikov.New(&c)
	if err != nil {
		e.status = err.Error()
		return e, nil
	}
	e.live = NewLive(m)
	e.stage = stageLive
	e.status = ""
	return e, e.live.Init()
}

func (e Explore) View() string {
	switch e.stage {
	case stageParams:
		return e.viewParams()
	case stageLive:
		return e.live.View()
	}
	return e.viewPresets()
}

func (e Explore) viewPresets() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("SITNIKOV PRESETS") + "\n")
	for i, p := range e.presets {
		line := fmt.Sprintf("%s/%-10s e=%.2f z0=%.2f", p.family, p.name, p.cfg.Eccentricity, p.cfg.Z0)
		if p.cfg.MEGNO {
			line += " megno"
		}
		if i == e.cursor {
			s.WriteString(statusRunning.Render("> "+line) + "\n")
		} else {
			s.WriteString(valueStyle.Render("  "+line) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("J/K:Move Enter:Select Q:Quit"))
	return s.String()
}

func (e Explore) viewParams() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(e.chosen.family+"/"+e.chosen.name)) + "\n")
	for i, name := range e.paramNames {
		value := fmt.Sprintf("%10.4f", e.params[name])
		if e.editing && i == e.paramCursor {
			value = fmt.Sprintf("%10s", e.editBuf+"_")
		}
		if i == e.paramCursor {
			s.WriteString(statusRunning.Render("> "+fmt.Sprintf("%-12s", name)+value) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(name) + valueStyle.Render(value) + "\n")
		}
	}
	if e.status != "" {
		s.WriteString(errorStyle.Render(e.status) + "\n")
	}
	s.WriteString(helpStyle.Render("J/K:Move H/L:Adjust Enter:Edit S:Start Esc:Back"))
	return s.String()
}
