package spring

import "math"

const (
	// Mass is the fixed unit mass every simulation form assumes.
	Mass = 1.0
	// DurationScale relates iOS duration to response: duration = response * DurationScale.
	DurationScale = 0.95
)

// SpringParameters is the canonical iOS form.
type SpringParameters struct {
	Response        float64 `json:"response"`
	DampingFraction float64 `json:"damping_fraction"`
}

// DurationBounce is the alternate iOS form.
type DurationBounce struct {
	Duration float64 `json:"duration"`
	Bounce   float64 `json:"bounce"`
}

// Simulation holds the mass-spring-damper parameters shared by the Android
// and generic outputs.
type Simulation struct {
	Mass         float64 `json:"mass"`
	Stiffness    float64 `json:"stiffness"`
	DampingRatio float64 `json:"damping_ratio"`
	Damping      float64 `json:"damping"`
}

// Derived is the result of a forward conversion.
type Derived struct {
	Simulation
	DurationBounce
}

// FromResponseDamping converts response and damping fraction into the
// simulation form plus the cross-derived duration and bounce. A zero or
// non-finite response propagates as non-finite outputs.
func FromResponseDamping(response, dampingFraction float64) Derived {
	omega := 2 * math.Pi / response
	stiffness := omega * omega * Mass
	damping := (4 * math.Pi * dampingFraction * Mass) / response

	return Derived{
		Simulation: Simulation{
			Mass:         Mass,
			Stiffness:    Round2(stiffness),
			DampingRatio: Round2(DampingRatio(stiffness, damping)),
			Damping:      Round2(damping),
		},
		DurationBounce: DurationBounce{
			Duration: Round2(response * DurationScale),
			Bounce:   Round2(1 - dampingFraction),
		},
	}
}

// FromDurationBounce maps duration and bounce back onto the canonical form.
// The returned DurationBounce is the input re-rounded.
func FromDurationBounce(duration, bounce float64) (SpringParameters, DurationBounce) {
	params := SpringParameters{
		Response:        Round2(duration / DurationScale),
		DampingFraction: Round2(1 - bounce),
	}
	return params, DurationBounce{Duration: Round2(duration), Bounce: Round2(bounce)}
}

// DampingRatio normalizes a raw damping coefficient by critical damping for
// the unit mass.
func DampingRatio(stiffness, damping float64) float64 {
	return damping / (2 * math.Sqrt(Mass*stiffness))
}
