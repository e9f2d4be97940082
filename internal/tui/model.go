// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/config"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/visa"
)

// stopGrace bounds how long quitting waits for a stopping run to confirm.
const stopGrace = 3 * time.Second

// Model is the root bubbletea model: a parameter form, the live chart, and
// the status of the current or last run. One sweep runs at a time; its
// events arrive as bridge messages.
type Model struct {
	cfg  config.Config
	open sweep.OpenFunc
	log  *logrus.Logger

	form    form
	program *tea.Program
	runner  *sweep.Runner

	resources  []string
	resourceIx int

	points  []sweep.Point
	result  sweep.Result
	status  string
	errText string
	state   sweep.State

	running  bool
	quitting bool

	width, height int
}

// NewModel builds the idle UI prefilled from cfg. Runs open their
// instrument through open.
func NewModel(cfg config.Config, open sweep.OpenFunc, log *logrus.Logger) Model {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return Model{
		cfg:    cfg,
		open:   open,
		log:    log,
		form:   newForm(cfg),
		status: "Idle.",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, scanCmd(m.cfg.Connection.Backend, false))
}

// scanCmd discovers resources off the update loop.
func scanCmd(backend string, rescan bool) tea.Cmd {
	return func() tea.Msg {
		rs, err := visa.Resources(backend)
		return resourcesMsg{resources: rs, err: err, rescan: rescan}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case programReadyMsg:
		m.program = msg.program
		return m, nil

	case resourcesMsg:
		return m.handleResources(msg)

	case pointMsg:
		m.points = append(m.points, msg.point)
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case runErrorMsg:
		m.errText = msg.err.Error()
		return m, nil

	case doneMsg:
		m.result = msg.result
		return m, nil

	case finishedMsg:
		m.running = false
		m.runner = nil
		m.state = msg.state
		m.form = m.form.setEnabled(true)
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case stopTimeoutMsg:
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "q":
		// q only quits while the form is disabled; idle, it types into the
		// focused field.
		if m.running || m.quitting {
			return m.quit()
		}

	case "enter":
		return m.startSweep()

	case "esc":
		if m.running && m.runner != nil {
			m.runner.Stop()
		}
		return m, nil

	case "ctrl+r":
		if !m.running {
			m.status = "Scanning..."
			return m, scanCmd(m.cfg.Connection.Backend, true)
		}
		return m, nil

	case "tab":
		if !m.running {
			m.form = m.form.cycle(1)
		}
		return m, nil

	case "shift+tab":
		if !m.running {
			m.form = m.form.cycle(-1)
		}
		return m, nil

	case "up", "down":
		if !m.running && m.form.focus == fieldResource && len(m.resources) > 0 {
			delta := 1
			if msg.String() == "up" {
				delta = -1
			}
			m.resourceIx = (m.resourceIx + delta + len(m.resources)) % len(m.resources)
			m.form.setResource(m.resources[m.resourceIx])
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// quit stops a live run first and quits once it confirms, or after the
// grace period, whichever comes first.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.running && m.runner != nil {
		m.quitting = true
		m.runner.Stop()
		m.status = "Stopping..."
		return m, tea.Tick(stopGrace, func(time.Time) tea.Msg { return stopTimeoutMsg{} })
	}
	return m, tea.Quit
}

func (m Model) startSweep() (tea.Model, tea.Cmd) {
	if m.running {
		m.status = "Sweep already running..."
		return m, nil
	}
	if m.program == nil {
		m.errText = "terminal not ready yet"
		return m, nil
	}

	spec, resource, err := m.form.values()
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}

	r, err := sweep.NewRunner(spec, resource, m.open, sweep.WithLogger(m.log))
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}

	m.points = nil
	m.result = nil
	m.errText = ""
	m.state = sweep.Idle
	m.status = "Sweep started."
	m.runner = r
	m.running = true
	m.form = m.form.setEnabled(false)

	startBridge(m.program, r.Events())
	if err := r.Start(); err != nil {
		m.errText = err.Error()
		m.runner = nil
		m.running = false
		m.form = m.form.setEnabled(true)
	}
	return m, nil
}

func (m Model) handleResources(msg resourcesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errText = msg.err.Error()
	}
	m.resources = msg.resources
	m.resourceIx = 0
	if len(msg.resources) == 0 {
		if msg.rescan {
			m.status = "No resources found."
		}
		return m, nil
	}
	if msg.rescan || m.form.resource() == "" {
		m.form.setResource(msg.resources[0])
	}
	if msg.rescan {
		m.status = fmt.Sprintf("Found %d resources.", len(msg.resources))
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	title := titleStyle.Render("I-V Sweep")

	// Points stream in live; the done report replaces them as the
	// authoritative final trace.
	pts := m.points
	if len(m.result) > 0 {
		pts = m.result
	}

	statusLine := statusStyle.Render(m.status)
	if m.state.Terminal() {
		statusLine = stateStyle(m.state).Render(m.state.String()) + "  " + statusLine
	}
	if n := len(pts); n > 0 {
		statusLine += labelStyle.Render(fmt.Sprintf("  (%d points)", n))
	}

	errLine := " "
	if m.errText != "" {
		errLine = errorStyle.Render(m.errText)
	}

	help := helpStyle.Render(
		"enter start · esc stop · tab field · ↑/↓ resource · ctrl+r rescan · ctrl+c quit")

	// Rows used by everything except the chart: title, six form lines, a
	// separator, status, error, help.
	chartHeight := m.height - 11
	chart := renderChart(pts, m.width-2, chartHeight)
	if chart == "" {
		placeholder := "waiting for data..."
		if !m.running {
			placeholder = "no data yet (enter starts a sweep)"
		}
		chart = helpStyle.Render(placeholder)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.form.view(),
		"",
		chart,
		statusLine,
		errLine,
		help,
	)
}

// shutdown stops a still-live run after the program exits, bounded by the
// grace period. Quitting through the key map already did this; killing the
// terminal does not.
func (m Model) shutdown() {
	if m.runner != nil && m.runner.Running() {
		m.runner.Stop()
		m.runner.Wait(stopGrace)
	}
}
