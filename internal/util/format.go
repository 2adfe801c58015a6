package util

import (
	"fmt"
	"math"
)

// Placeholder is shown in place of a value that is NaN or infinite.
const Placeholder = "—"

// FormatValue formats v with two decimals, or Placeholder when v is not finite.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatInput formats an editable field value without trailing zeros, the
// way a number input shows it.
func FormatInput(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
