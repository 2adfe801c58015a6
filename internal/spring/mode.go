package spring

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownMode  = errors.New("unknown input mode")
	ErrUnknownGroup = errors.New("unknown output group")
)

// InputMode selects which iOS pair the user edits.
type InputMode int

const (
	ResponseDamping InputMode = iota
	DurationBounceMode
)

// Next cycles to the other input mode.
func (m InputMode) Next() InputMode {
	switch m {
	case ResponseDamping:
		return DurationBounceMode
	default:
		return ResponseDamping
	}
}

// String returns the config/flag name of the mode.
func (m InputMode) String() string {
	switch m {
	case DurationBounceMode:
		return "duration_bounce"
	default:
		return "response_damping"
	}
}

// Label returns the tab caption.
func (m InputMode) Label() string {
	switch m {
	case DurationBounceMode:
		return "Duration & Bounce"
	default:
		return "Response & Damping"
	}
}

// FieldLabels returns the captions of the two inputs of the mode.
func (m InputMode) FieldLabels() [2]string {
	switch m {
	case DurationBounceMode:
		return [2]string{"iOS Duration (seconds)", "iOS Bounce"}
	default:
		return [2]string{"iOS Response (seconds)", "iOS Damping Fraction"}
	}
}

// InputRange returns the widget range hint for field i of the mode. The
// upper bound is +Inf for the time fields.
func (m InputMode) InputRange(i int) (lo, hi float64) {
	if i == 1 {
		return 0, 1
	}
	return 0, math.Inf(1)
}

// ParseInputMode accepts the String form of a mode, case-insensitively.
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "response_damping", "response-damping", "":
		return ResponseDamping, nil
	case "duration_bounce", "duration-bounce":
		return DurationBounceMode, nil
	}
	return ResponseDamping, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// OutputGroup selects how the simulation parameters are labelled. It never
// changes the values.
type OutputGroup int

const (
	Android OutputGroup = iota
	Generic
)

// Next cycles to the other output group.
func (g OutputGroup) Next() OutputGroup {
	switch g {
	case Android:
		return Generic
	default:
		return Android
	}
}

func (g OutputGroup) String() string {
	switch g {
	case Generic:
		return "generic"
	default:
		return "android"
	}
}

// Label returns the tab caption.
func (g OutputGroup) Label() string {
	switch g {
	case Generic:
		return "Generic"
	default:
		return "Android"
	}
}

// ParseOutputGroup accepts the String form of a group, case-insensitively.
func ParseOutputGroup(s string) (OutputGroup, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android", "":
		return Android, nil
	case "generic":
		return Generic, nil
	}
	return Android, fmt.Errorf("%w %q", ErrUnknownGroup, s)
}
