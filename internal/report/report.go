// Package report writes a conversion snapshot for the non-interactive mode.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/olivier-w/springconv/internal/spring"
	"github.com/olivier-w/springconv/internal/util"
)

// WriteText renders the iOS inputs followed by the outputs of group as a
// two-column table.
func WriteText(w io.Writer, snap spring.Snapshot, group spring.OutputGroup) error {
	rows := [][]string{
		{"iOS Response (seconds)", util.FormatValue(snap.Spring.Response)},
		{"iOS Damping Fraction", util.FormatValue(snap.Spring.DampingFraction)},
		{"iOS Duration (seconds)", util.FormatValue(snap.Duration)},
		{"iOS Bounce", util.FormatValue(snap.Bounce)},
	}
	for _, f := range snap.Fields(group) {
		rows = append(rows, []string{f.Label, util.FormatValue(f.Value)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Parameter", "Value").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if !snap.Finite() {
		if _, err := fmt.Fprintln(w, "invalid input: some values are not finite"); err != nil {
			return err
		}
	}
	return nil
}

type jsonSnapshot struct {
	Response        *float64 `json:"response"`
	DampingFraction *float64 `json:"damping_fraction"`
	Duration        *float64 `json:"duration"`
	Bounce          *float64 `json:"bounce"`
	Mass            *float64 `json:"mass"`
	Stiffness       *float64 `json:"stiffness"`
	DampingRatio    *float64 `json:"damping_ratio"`
	Damping         *float64 `json:"damping"`
	Valid           bool     `json:"valid"`
}

// WriteJSON writes snap as indented JSON. Non-finite values become null.
func WriteJSON(w io.Writer, snap spring.Snapshot) error {
	out := jsonSnapshot{
		Response:        finite(snap.Spring.Response),
		DampingFraction: finite(snap.Spring.DampingFraction),
		Duration:        finite(snap.Duration),
		Bounce:          finite(snap.Bounce),
		Mass:            finite(snap.Mass),
		Stiffness:       finite(snap.Stiffness),
		DampingRatio:    finite(snap.DampingRatio),
		Damping:         finite(snap.Damping),
		Valid:           snap.Finite(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func finite(v float64) *float64 {
	if !spring.IsFinite(v) {
		return nil
	}
	return &v
}
