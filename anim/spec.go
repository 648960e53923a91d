package anim

import "slices"

// Params collects the declarative attributes a keyframe animation is
// built from. The zero value of CalcMode is [CalcModeLinear], matching
// the SMIL default.
//
// Params is an input to [NewKeyframeSpec] only; the constructor copies
// every slice it keeps, so callers may reuse or mutate a Params after
// construction.
type Params struct {
	CalcMode CalcMode

	// Values between which to interpolate. When empty, the value list is
	// derived from From, To, and By.
	Values []Value
	From   Value
	To     Value
	By     Value

	// KeyTimes holds the unit-time boundary of each keyframe. When nil,
	// boundaries are evenly spaced.
	KeyTimes []float64
	// KeySplines holds four easing control floats (x1, y1, x2, y2) per
	// keyframe interval. Required for, and only used by,
	// [CalcModeSpline].
	KeySplines []float64

	// Additive selects whether the sampled value adds onto animations
	// lower in the sandwich or replaces them.
	Additive bool
	// Cumulative selects whether repeat iterations accumulate onto each
	// other.
	Cumulative bool

	// Underlying returns the value the target attribute would have absent
	// animation. It is consulted only for a to-animation (a bare To with
	// no Values, From, or By).
	Underlying func() Value
}

// KeyframeSpec is a validated, immutable keyframe animation
// specification. A nil-error result from [NewKeyframeSpec] guarantees the
// invariants sampling relies on: at least two values, one key time per
// value, and one easing cubic per interval in spline mode.
type KeyframeSpec struct {
	calcMode        CalcMode
	values          []Value
	keyTimes        []float64
	keySplineCubics []Cubic
	additive        bool
	cumulative      bool
	toAnimation     bool
}

// NewKeyframeSpec validates p and normalizes it into a sampling-ready
// spec. All structural problems are reported here, as a [*ConfigError];
// sampling a successfully constructed spec cannot fail.
func NewKeyframeSpec(p Params) (*KeyframeSpec, error) {
	values := slices.Clone(p.Values)
	additive := p.Additive
	cumulative := p.Cumulative
	toAnimation := false

	if len(values) == 0 {
		switch {
		case p.From != nil && p.To != nil:
			values = []Value{p.From, p.To}
		case p.From != nil && p.By != nil:
			// End value is from+by, computed through the accumulation
			// contract: lerp fraction 0 keeps from, then add by once.
			values = []Value{p.From, p.From.Interpolate(nil, 0, p.By, 1)}
		case p.From != nil:
			return nil, configErrorf(MissingEndValue, "from given without to or by")
		case p.To != nil:
			if p.Underlying == nil {
				return nil, configErrorf(MissingEndValue, "to-animation requires an underlying value")
			}
			values = []Value{p.Underlying(), p.To}
			toAnimation = true
			cumulative = false
		case p.By != nil:
			additive = true
			values = []Value{p.By.Zero(), p.By}
		default:
			return nil, configErrorf(MissingEndValue, "no values, from, to, or by given")
		}
	} else if len(values) == 1 {
		// A single explicit value animates to a constant. Duplicate it so
		// that every interval has a well-defined end value.
		values = append(values, values[0])
	}

	keyTimes, err := normalizeKeyTimes(p.CalcMode, p.KeyTimes, len(values))
	if err != nil {
		return nil, err
	}

	var cubics []Cubic
	if p.CalcMode == CalcModeSpline {
		cubics, err = splineCubics(p.KeySplines, len(keyTimes))
		if err != nil {
			return nil, err
		}
	}

	spec := &KeyframeSpec{
		calcMode:        p.CalcMode,
		values:          values,
		keyTimes:        keyTimes,
		keySplineCubics: cubics,
		additive:        additive,
		cumulative:      cumulative,
		toAnimation:     toAnimation,
	}
	logger().Debug("keyframe spec constructed",
		"calcMode", spec.calcMode,
		"values", len(spec.values),
		"additive", spec.additive,
		"cumulative", spec.cumulative,
		"toAnimation", spec.toAnimation)
	return spec, nil
}

// normalizeKeyTimes validates supplied key times or synthesizes evenly
// spaced defaults, returning a slice owned by the spec.
func normalizeKeyTimes(mode CalcMode, keyTimes []float64, numValues int) ([]float64, error) {
	// Paced timing ignores declared key times entirely, as SMIL requires;
	// pacing falls back to even spacing (see the package documentation).
	if mode == CalcModePaced {
		keyTimes = nil
	}
	if keyTimes == nil {
		switch mode {
		case CalcModeDiscrete:
			out := make([]float64, numValues)
			for i := range out {
				out[i] = float64(i) / float64(numValues)
			}
			return out, nil
		default:
			// Linear and spline spacing. Paced timing is approximated the
			// same way: with no distance metric available, even spacing
			// is the closest conforming behavior.
			out := make([]float64, numValues)
			for i := range out {
				out[i] = float64(i) / float64(numValues-1)
			}
			return out, nil
		}
	}

	if len(keyTimes) != numValues {
		return nil, configErrorf(InvalidKeyTimes, "%d key times for %d values", len(keyTimes), numValues)
	}
	switch mode {
	case CalcModeLinear, CalcModeSpline:
		if len(keyTimes) < 2 || keyTimes[0] != 0 || keyTimes[len(keyTimes)-1] != 1 {
			return nil, configErrorf(InvalidKeyTimes, "key times must run from 0 to 1, got %v", keyTimes)
		}
	case CalcModeDiscrete:
		if len(keyTimes) == 0 || keyTimes[0] != 0 {
			return nil, configErrorf(InvalidKeyTimes, "key times must start at 0, got %v", keyTimes)
		}
	}
	for i, kt := range keyTimes {
		if kt < 0 || kt > 1 {
			return nil, configErrorf(InvalidKeyTimes, "key time %g outside [0, 1]", kt)
		}
		if i > 0 && kt < keyTimes[i-1] {
			return nil, configErrorf(InvalidKeyTimes, "key times not non-decreasing at index %d", i)
		}
	}
	return slices.Clone(keyTimes), nil
}

// splineCubics builds one easing cubic per keyframe interval from groups
// of four control floats.
func splineCubics(keySplines []float64, numKeyTimes int) ([]Cubic, error) {
	want := (numKeyTimes - 1) * 4
	if len(keySplines) != want {
		return nil, configErrorf(InvalidKeySplines, "got %d control floats, want %d", len(keySplines), want)
	}
	cubics := make([]Cubic, numKeyTimes-1)
	for i := range cubics {
		cubics[i] = UnitCubic(
			keySplines[i*4],
			keySplines[i*4+1],
			keySplines[i*4+2],
			keySplines[i*4+3],
		)
	}
	return cubics, nil
}

// CalcMode returns the spec's interpolation discipline.
func (spec *KeyframeSpec) CalcMode() CalcMode { return spec.calcMode }

// Additive reports whether the sampled value composes by addition onto
// animations lower in the sandwich.
func (spec *KeyframeSpec) Additive() bool { return spec.additive }

// WillReplace reports whether the sampled value replaces animations lower
// in the sandwich. It is the negation of [KeyframeSpec.Additive].
func (spec *KeyframeSpec) WillReplace() bool { return !spec.additive }

// Cumulative reports whether repeat iterations accumulate onto each
// other. It is always false for a to-animation.
func (spec *KeyframeSpec) Cumulative() bool { return spec.cumulative }

// IsToAnimation reports whether the spec was built from a bare to value,
// interpolating from the attribute's pre-animation value.
func (spec *KeyframeSpec) IsToAnimation() bool { return spec.toAnimation }
