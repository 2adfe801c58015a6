package spring

// Snapshot is everything the form shows for the current pair of inputs.
type Snapshot struct {
	Mode           InputMode        `json:"-"`
	Spring         SpringParameters `json:"spring"`
	DurationBounce `json:"duration_bounce"`
	Simulation     `json:"simulation"`
}

// Field is one labelled output value.
type Field struct {
	Label string
	Value float64
}

// Resolve recomputes the snapshot from the two raw inputs of mode. In
// DurationBounceMode the inputs are mapped back onto response and damping
// fraction first, then converted forward; the duration and bounce the user
// typed are kept.
func Resolve(mode InputMode, a, b float64) Snapshot {
	switch mode {
	case DurationBounceMode:
		params, db := FromDurationBounce(a, b)
		d := FromResponseDamping(params.Response, params.DampingFraction)
		return Snapshot{
			Mode:           mode,
			Spring:         params,
			DurationBounce: db,
			Simulation:     d.Simulation,
		}
	default:
		params := SpringParameters{Response: Round2(a), DampingFraction: Round2(b)}
		d := FromResponseDamping(params.Response, params.DampingFraction)
		return Snapshot{
			Mode:           mode,
			Spring:         params,
			DurationBounce: d.DurationBounce,
			Simulation:     d.Simulation,
		}
	}
}

// Inputs returns the two values of mode as currently held by the snapshot.
func (s Snapshot) Inputs(mode InputMode) [2]float64 {
	if mode == DurationBounceMode {
		return [2]float64{s.Duration, s.Bounce}
	}
	return [2]float64{s.Spring.Response, s.Spring.DampingFraction}
}

// Fields returns the outputs shown under group. Both groups read the same
// stiffness.
func (s Snapshot) Fields(group OutputGroup) []Field {
	switch group {
	case Generic:
		return []Field{
			{Label: "Generic Stiffness", Value: s.Stiffness},
			{Label: "Generic Damping", Value: s.Damping},
			{Label: "Mass", Value: s.Mass},
		}
	default:
		return []Field{
			{Label: "Android Stiffness", Value: s.Stiffness},
			{Label: "Android Damping Ratio", Value: s.DampingRatio},
		}
	}
}

// Finite reports whether every derived value is a finite number. A false
// result is the only signal of invalid input the engine gives.
func (s Snapshot) Finite() bool {
	for _, v := range []float64{
		s.Spring.Response, s.Spring.DampingFraction,
		s.Duration, s.Bounce,
		s.Stiffness, s.DampingRatio, s.Damping,
	} {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
