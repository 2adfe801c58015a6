package spring

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// epsilon is the float64 machine epsilon (2^-52). It nudges values stored
// just below a .005 boundary back over it before rounding.
var epsilon = math.Nextafter(1, 2) - 1

// Round2 rounds x to two decimal places. NaN and ±Inf pass through.
func Round2(x float64) float64 {
	return math.Round((x+epsilon)*100) / 100
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ParseInput parses a numeric form field. Text that is not a number yields
// NaN so it flows through the conversion like any other invalid input.
func ParseInput(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}
