package ui

import (
	"log"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Spring parameters

| Term | Meaning |
|---|---|
| **Response** | iOS time constant in seconds; how quickly the spring settles |
| **Damping fraction** | damping relative to critical damping, nominally 0 to 1 |
| **Duration** | response × 0.95 |
| **Bounce** | 1 − damping fraction; higher bounce oscillates more |
| **Stiffness** | spring constant k = (2π / response)² · mass |
| **Damping** | raw damping coefficient c = 4π · fraction · mass / response |
| **Damping ratio** | c / (2√(k·m)); 1 is critical damping |

Mass is fixed at 1. Values are rounded to two decimals. A response of 0 or a
field that is not a number leaves the outputs blank.
`

// renderHelp renders the glossary for the given terminal width, falling back
// to the raw Markdown when glamour cannot render it.
func renderHelp(width int) string {
	if width < 24 || width > 100 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		log.Printf("help renderer: %v", err)
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		log.Printf("help render: %v", err)
		return helpMarkdown
	}
	return out
}
