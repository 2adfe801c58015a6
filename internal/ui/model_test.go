package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/springconv/internal/config"
	"github.com/olivier-w/springconv/internal/spring"
	"github.com/olivier-w/springconv/internal/util"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func clearFocused(m Model) Model {
	for i, n := 0, len(m.inputs[m.focus].Value()); i < n; i++ {
		m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	return m
}

func TestNewUsesDefaultSnapshot(t *testing.T) {
	m := New(config.Default())
	s := m.Snapshot()
	if s.Stiffness != 438.65 || s.DampingRatio != 0.7 || s.Damping != 29.32 {
		t.Fatalf("unexpected simulation: %+v", s.Simulation)
	}
	if got := m.inputs[0].Value(); got != "0.3" {
		t.Fatalf("expected response field 0.3, got %q", got)
	}
	view := m.View()
	for _, want := range []string{"Android Stiffness", "438.65", "duration 0.29"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestTypingRecomputes(t *testing.T) {
	m := clearFocused(New(config.Default()))
	m = send(m, runes("0.5"))

	s := m.Snapshot()
	if s.Spring.Response != 0.5 {
		t.Fatalf("expected response 0.5, got %v", s.Spring.Response)
	}
	if s.Duration != spring.Round2(0.5*spring.DurationScale) {
		t.Fatalf("expected duration to follow response, got %v", s.Duration)
	}
}

func TestNonNumericRunesIgnored(t *testing.T) {
	m := send(New(config.Default()), runes("x"))
	if got := m.inputs[0].Value(); got != "0.3" {
		t.Fatalf("expected field unchanged, got %q", got)
	}
}

func TestZeroResponseShowsPlaceholder(t *testing.T) {
	m := clearFocused(New(config.Default()))
	m = send(m, runes("0"))

	if m.Snapshot().Finite() {
		t.Fatal("expected non-finite snapshot for zero response")
	}
	view := m.View()
	if !strings.Contains(view, util.Placeholder) {
		t.Fatalf("expected placeholder in view:\n%s", view)
	}
	if !strings.Contains(view, "invalid input") {
		t.Fatalf("expected invalid input note in view:\n%s", view)
	}
}

func TestModeSwitchSeedsDurationBounce(t *testing.T) {
	m := send(New(config.Default()), runes("m"))
	if m.mode != spring.DurationBounceMode {
		t.Fatalf("expected duration/bounce mode, got %v", m.mode)
	}
	if m.inputs[0].Value() != "0.29" || m.inputs[1].Value() != "0.3" {
		t.Fatalf("unexpected seeded fields: %q, %q", m.inputs[0].Value(), m.inputs[1].Value())
	}

	m = clearFocused(m)
	m = send(m, runes("0.5"))
	s := m.Snapshot()
	if s.Spring.Response != 0.53 || s.Spring.DampingFraction != 0.7 {
		t.Fatalf("unexpected spring params: %+v", s.Spring)
	}
	if s.Duration != 0.5 {
		t.Fatalf("expected typed duration kept, got %v", s.Duration)
	}
	if !strings.Contains(m.View(), "response 0.53") {
		t.Fatalf("expected derived response in view:\n%s", m.View())
	}
}

func TestModeSwitchBackRestoresResponse(t *testing.T) {
	m := send(New(config.Default()), runes("m"))
	m = send(m, runes("m"))
	if m.mode != spring.ResponseDamping {
		t.Fatalf("expected response/damping mode, got %v", m.mode)
	}
	if m.inputs[0].Value() != "0.3" || m.inputs[1].Value() != "0.7" {
		t.Fatalf("unexpected fields: %q, %q", m.inputs[0].Value(), m.inputs[1].Value())
	}
}

func TestOutputGroupToggle(t *testing.T) {
	m := send(New(config.Default()), runes("o"))
	if m.group != spring.Generic {
		t.Fatalf("expected generic group, got %v", m.group)
	}
	view := m.View()
	for _, want := range []string{"Generic Stiffness", "Generic Damping", "29.32", "Mass"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if m.Snapshot() != New(config.Default()).Snapshot() {
		t.Fatal("switching output group must not change values")
	}
}

func TestStepKeysClampToRange(t *testing.T) {
	m := send(New(config.Default()), tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Fatalf("expected focus on second field, got %d", m.focus)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.inputs[1].Value(); got != "0.69" {
		t.Fatalf("expected 0.69 after step down, got %q", got)
	}
	if m.Snapshot().Spring.DampingFraction != 0.69 {
		t.Fatalf("expected snapshot to follow step, got %v", m.Snapshot().Spring.DampingFraction)
	}

	m.inputs[1].SetValue("1")
	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.inputs[1].Value(); got != "1" {
		t.Fatalf("expected damping fraction clamped at 1, got %q", got)
	}
}

func TestStepDownClampsAtZero(t *testing.T) {
	m := New(config.Default())
	m.inputs[0].SetValue("0")
	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.inputs[0].Value(); got != "0" {
		t.Fatalf("expected response clamped at 0, got %q", got)
	}
}

func TestCopyWritesCurrentGroup(t *testing.T) {
	var copied string
	m := New(config.Default())
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	next, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m = next.(Model)
	m = send(m, cmd())

	if !strings.Contains(copied, "Android Stiffness: 438.65") {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if !strings.Contains(m.statusMsg, "Copied") {
		t.Fatalf("expected copied status, got %q", m.statusMsg)
	}

	m = send(m, clearStatusMsg{seq: m.statusSeq})
	if m.statusMsg != "" {
		t.Fatalf("expected status cleared, got %q", m.statusMsg)
	}
}

func TestCopyFailureShowsError(t *testing.T) {
	m := New(config.Default())
	m.copyFn = func(string) error { return errors.New("no clipboard") }

	_, cmd := m.Update(runes("y"))
	m = send(m, cmd())
	if !m.statusErr || !strings.Contains(m.statusMsg, "no clipboard") {
		t.Fatalf("expected error status, got %q", m.statusMsg)
	}
}

func TestStaleStatusClearIgnored(t *testing.T) {
	m := New(config.Default())
	m.setStatus("first", false)
	m.setStatus("second", false)

	m = send(m, clearStatusMsg{seq: 1})
	if m.statusMsg != "second" {
		t.Fatalf("expected newer status kept, got %q", m.statusMsg)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := send(New(config.Default()), runes("?"))
	if !m.showHelp || m.helpCache == "" {
		t.Fatal("expected help overlay rendered")
	}
	if !strings.Contains(m.View(), "close help") {
		t.Fatalf("expected help footer in view:\n%s", m.View())
	}

	m = send(m, runes("m"))
	if m.mode != spring.ResponseDamping {
		t.Fatal("keys other than close/quit should be ignored while help is open")
	}

	m = send(m, runes("?"))
	if m.showHelp {
		t.Fatal("expected help overlay closed")
	}
}

func TestQuitClearsView(t *testing.T) {
	next, cmd := New(config.Default()).Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Fatalf("expected empty view after quit, got %q", v)
	}
}

func TestConfigSeedsModeAndGroup(t *testing.T) {
	cfg := config.Default()
	cfg.InputMode = spring.DurationBounceMode
	cfg.OutputGroup = spring.Generic

	m := New(cfg)
	if m.inputs[0].Value() != "0.29" || m.inputs[1].Value() != "0.3" {
		t.Fatalf("unexpected fields: %q, %q", m.inputs[0].Value(), m.inputs[1].Value())
	}
	if m.Snapshot().Spring.Response != 0.31 {
		t.Fatalf("expected response 0.31, got %v", m.Snapshot().Spring.Response)
	}
	if !strings.Contains(m.View(), "Generic Damping") {
		t.Fatal("expected generic outputs")
	}
}
