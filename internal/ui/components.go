package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/springconv/internal/spring"
	"github.com/olivier-w/springconv/internal/util"
)

const labelWidth = 24

func renderTabs(labels []string, active int) string {
	tabs := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			tabs[i] = activeTabStyle.Render(l)
		} else {
			tabs[i] = tabStyle.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderOutput(f spring.Field) string {
	label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.Label))
	text := util.FormatValue(f.Value)
	if text == util.Placeholder {
		return label + errorStyle.Render(fmt.Sprintf("%8s", text))
	}
	return label + valueStyle.Render(fmt.Sprintf("%8s", text))
}

// renderDerived shows the iOS pair the user is not editing.
func renderDerived(snap spring.Snapshot, mode spring.InputMode) string {
	if mode == spring.DurationBounceMode {
		return derivedStyle.Render(fmt.Sprintf("response %s  ·  damping fraction %s",
			util.FormatValue(snap.Spring.Response), util.FormatValue(snap.Spring.DampingFraction)))
	}
	return derivedStyle.Render(fmt.Sprintf("duration %s  ·  bounce %s",
		util.FormatValue(snap.Duration), util.FormatValue(snap.Bounce)))
}

// copyText is the plain-text form of the outputs placed on the clipboard.
func copyText(snap spring.Snapshot, group spring.OutputGroup) string {
	var b strings.Builder
	for _, f := range snap.Fields(group) {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, util.FormatValue(f.Value))
	}
	return b.String()
}
