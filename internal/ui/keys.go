package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const numericRunes = "0123456789.-+eE"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// isNumericInput reports whether a rune key only carries characters a
// number field accepts.
func isNumericInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if !strings.ContainsRune(numericRunes, r) {
			return false
		}
	}
	return true
}

func helpText(showHelp bool) string {
	if showHelp {
		return "? close help  q quit"
	}
	return "tab field  ↑/↓ step  m input  o output  y copy  ? help  q quit"
}
