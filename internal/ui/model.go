package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/springconv/internal/config"
	"github.com/olivier-w/springconv/internal/spring"
	"github.com/olivier-w/springconv/internal/util"
)

const stepSize = 0.01

// Model is the Bubbletea model for the converter form.
type Model struct {
	mode   spring.InputMode
	group  spring.OutputGroup
	inputs [2]textinput.Model
	focus  int
	snap   spring.Snapshot
	gauge  gauge
	width  int

	showHelp  bool
	helpCache string
	helpWidth int

	statusMsg string
	statusErr bool
	statusSeq int
	quitting  bool

	copyFn func(string) error
}

// New creates the form seeded from cfg.
func New(cfg config.Config) Model {
	m := Model{
		mode:   cfg.InputMode,
		group:  cfg.OutputGroup,
		gauge:  newGauge(),
		copyFn: clipboard.WriteAll,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 16
		ti.Width = 16
		m.inputs[i] = ti
	}
	a, b := cfg.Inputs()
	m.setInputs([2]float64{a, b})
	m.inputs[0].Focus()
	m.recompute()
	return m
}

// Snapshot returns the current conversion result.
func (m Model) Snapshot() spring.Snapshot {
	return m.snap
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tea.SetWindowTitle("springconv")}
	if m.gauge.animating {
		cmds = append(cmds, frameCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if m.gauge.step() {
			return m, frameCmd()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
			return m, cmd
		}
		cmd := m.setStatus(fmt.Sprintf("Copied %s values", m.group.Label()), false)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.gauge.setWidth(msg.Width - 16)
		if m.showHelp {
			m.refreshHelp()
		}
		return m, nil
	}

	cmd := m.updateFocused(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
			return m, nil
		case "q", "ctrl+c":
			return m.quit()
		}
		return m, nil
	}
	if isQuit(msg) {
		return m.quit()
	}

	var cmd tea.Cmd
	switch msg.String() {
	case "tab":
		cmd = m.setFocus((m.focus + 1) % len(m.inputs))
		return m, cmd
	case "shift+tab":
		cmd = m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, cmd
	case "up":
		cmd = m.step(stepSize)
		return m, cmd
	case "down":
		cmd = m.step(-stepSize)
		return m, cmd
	case "m":
		m.mode = m.mode.Next()
		log.Printf("input mode -> %s", m.mode)
		m.setInputs(m.snap.Inputs(m.mode))
		cmd = m.setFocus(0)
		return m, cmd
	case "o":
		m.group = m.group.Next()
		return m, nil
	case "y":
		text, copyFn := copyText(m.snap, m.group), m.copyFn
		return m, func() tea.Msg {
			return copiedMsg{err: copyFn(text)}
		}
	case "?":
		m.showHelp = true
		m.refreshHelp()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && !isNumericInput(msg) {
		return m, nil
	}

	cmd = m.updateFocused(msg)
	return m, cmd
}

// updateFocused forwards msg to the focused field and recomputes when its
// text changed.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		return tea.Batch(cmd, m.recompute())
	}
	return cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

// recompute re-resolves the snapshot from the current field text and points
// the gauge at the new damping ratio.
func (m *Model) recompute() tea.Cmd {
	a := spring.ParseInput(m.inputs[0].Value())
	b := spring.ParseInput(m.inputs[1].Value())
	m.snap = spring.Resolve(m.mode, a, b)
	if m.gauge.setTarget(m.snap.DampingRatio) {
		return frameCmd()
	}
	return nil
}

// step nudges the focused field like a number input's spinner, clamped to
// the field's range.
func (m *Model) step(delta float64) tea.Cmd {
	lo, hi := m.mode.InputRange(m.focus)
	v := spring.ParseInput(m.inputs[m.focus].Value())
	if !spring.IsFinite(v) {
		v = lo
	}
	v = spring.Round2(v + delta)
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	m.inputs[m.focus].SetValue(util.FormatInput(v))
	m.inputs[m.focus].CursorEnd()
	return m.recompute()
}

func (m *Model) setInputs(vals [2]float64) {
	for i, v := range vals {
		m.inputs[i].SetValue(util.FormatInput(v))
		m.inputs[i].CursorEnd()
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.statusMsg = s
	m.statusErr = isErr
	return clearStatusCmd(m.statusSeq)
}

func (m *Model) refreshHelp() {
	if m.helpCache != "" && m.helpWidth == m.width {
		return
	}
	m.helpCache = renderHelp(m.width)
	m.helpWidth = m.width
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("springconv"))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.helpCache)
		b.WriteString("\n  ")
		b.WriteString(helpStyle.Render(helpText(true)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(renderTabs([]string{spring.ResponseDamping.Label(), spring.DurationBounceMode.Label()}, int(m.mode)))
	b.WriteString("\n\n")

	labels := m.mode.FieldLabels()
	for i := range m.inputs {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(renderDerived(m.snap, m.mode))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(renderTabs([]string{spring.Android.Label(), spring.Generic.Label()}, int(m.group)))
	b.WriteString("\n\n")
	for _, f := range m.snap.Fields(m.group) {
		b.WriteString("  ")
		b.WriteString(renderOutput(f))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(labelStyle.Render("damping "))
	b.WriteString(m.gauge.View())
	b.WriteString("\n")

	if !m.snap.Finite() {
		b.WriteString("\n  ")
		b.WriteString(errorStyle.Render("invalid input: every field must be a number and response non-zero"))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n  ")
		b.WriteString(style.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render(helpText(false)))
	b.WriteString("\n")
	return b.String()
}
