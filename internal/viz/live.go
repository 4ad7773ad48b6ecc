package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/esolano/thermofan/internal/config"
	"github.com/esolano/thermofan/internal/plant"
	"github.com/esolano/thermofan/internal/report"
	"github.com/esolano/thermofan/internal/sim"
)

const (
	frameRate  = 60
	chartWidth = 56
	gaugeWidth = 24

	// Frame-time spikes (terminal stalls, suspends) are capped so a
	// single tick cannot jump the integration.
	maxFrameDt = 0.1
)

type TickMsg time.Time

// Model drives one simulation session interactively. Keyboard input
// replaces the original's on-screen buttons: load presets, PID toggle,
// reset and report generation.
type Model struct {
	session *sim.Session
	cfg     *config.Config

	running  bool
	lastTick time.Time
	notice   string
	noticeAt time.Time
}

func NewModel(cfg *config.Config) Model {
	session := sim.NewSession(cfg.NewPlant, cfg.NewPID())
	session.SetPIDEnabled(cfg.PIDEnabled)
	return Model{
		session: session,
		cfg:     cfg,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Time{}
		case "r":
			m.session.Reset()
		case "p":
			m.session.SetPIDEnabled(!m.session.PIDEnabled())
		case "1":
			m.applyPreset("idle")
		case "2":
			m.applyPreset("office")
		case "3":
			m.applyPreset("gaming")
		case "4":
			m.applyPreset("render")
		case "g":
			m.generateReport()
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running {
			dt := 0.0
			if !m.lastTick.IsZero() {
				dt = now.Sub(m.lastTick).Seconds()
				if dt > maxFrameDt {
					dt = maxFrameDt
				}
			}
			m.session.Tick(dt)
		}
		m.lastTick = now
		return m, tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) applyPreset(name string) {
	if load, ok := config.GetPreset(name); ok {
		m.session.SetLoad(load)
	}
}

func (m *Model) generateReport() {
	p := m.session.Plant()
	h := m.session.History()
	path, err := report.Generate(report.DefaultDir, report.Data{
		GeneratedAt: time.Now(),
		Duration:    m.session.Elapsed(),
		PIDEnabled:  m.session.PIDEnabled(),
		Damaged:     p.Damaged(),
		FinalTemp:   p.Temperature(),
		Setpoint:    m.cfg.PID.Setpoint,
		Kp:          m.cfg.PID.Kp,
		Ki:          m.cfg.PID.Ki,
		Kd:          m.cfg.PID.Kd,
		OutputMin:   m.cfg.PID.OutputMin,
		OutputMax:   m.cfg.PID.OutputMax,
		IntMin:      m.cfg.PID.IntMin,
		IntMax:      m.cfg.PID.IntMax,
		Temps:       h.Temps(),
		Fans:        h.Fans(),
	})
	if err != nil {
		m.notice = "report failed: " + err.Error()
	} else {
		m.notice = "report written: " + path
	}
	m.noticeAt = time.Now()
}

func (m Model) View() string {
	p := m.session.Plant()

	var s strings.Builder
	s.WriteString(headerStyle.Render("THERMOFAN") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if p.Damaged() {
		s.WriteString(damagedStyle.Render("DAMAGED — press r to reinitialize") + "\n\n")
	} else {
		s.WriteString(status + "\n\n")
	}

	st := statusStyle(p.Status())
	s.WriteString(labelStyle.Render("Temperature") +
		valueStyle.Render(fmt.Sprintf("%6.1f°C ", p.Temperature())) +
		gauge(p.Temperature(), p.Ambient, p.AbsoluteMax, gaugeWidth, st) + "\n")
	s.WriteString(labelStyle.Render("Fan") +
		valueStyle.Render(fmt.Sprintf("%6.1f%%  ", p.FanSpeed())) +
		gauge(p.FanSpeed(), 0, 100, gaugeWidth, valueStyle) + "\n")
	s.WriteString(labelStyle.Render("Load") +
		valueStyle.Render(fmt.Sprintf("%6.1f%%  ", p.Load())) +
		gauge(p.Load(), 0, 100, gaugeWidth, valueStyle) + "\n")
	s.WriteString(labelStyle.Render("Status") + st.Render(p.Status().String()) + "\n")

	if m.session.PIDEnabled() {
		s.WriteString(labelStyle.Render("PID") + pidOn.Render("ON") +
			valueStyle.Render(fmt.Sprintf("  setpoint %.0f°C", m.cfg.PID.Setpoint)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("PID") + pidOff.Render("OFF") +
			valueStyle.Render(fmt.Sprintf("  fixed %.0f%%", sim.IdleCommand)) + "\n")
	}

	if p.OverheatTime() > 0 {
		s.WriteString(labelStyle.Render("Overheat") +
			statusCritical.Render(fmt.Sprintf("%.1fs / %.0fs", p.OverheatTime(), plant.OverheatLimit)) + "\n")
	}
	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(fmt.Sprintf("%.1fs", m.session.Elapsed())) + "\n")

	h := m.session.History()
	if h.Len() > 1 {
		tempChart := asciigraph.Plot(h.Temps(),
			asciigraph.Height(7), asciigraph.Width(chartWidth), asciigraph.Caption("Temperature °C"))
		fanChart := asciigraph.Plot(h.Fans(),
			asciigraph.Height(5), asciigraph.Width(chartWidth), asciigraph.Caption("Fan %"))
		s.WriteString(graphStyle.Render(tempChart) + "\n")
		s.WriteString(graphStyle.Render(fanChart) + "\n")
	}

	if m.notice != "" && time.Since(m.noticeAt) < 5*time.Second {
		s.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  P:PID on/off  1-4:Load presets  G:Report  Q:Quit"))
	return panelStyle.Render(s.String())
}

// Run starts the interactive dashboard and blocks until quit.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
