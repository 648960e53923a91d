package anim

import "math"

// Indefinite represents an indefinite simple duration when converting
// simple time to unit time with [Sampler.SampleSimpleTime].
var Indefinite = math.Inf(1)

// resolve determines the active keyframe interval at the given unit time
// and the eased interpolation fraction within it. A nil next value means
// no interpolation is to be applied.
func (spec *KeyframeSpec) resolve(unitTime float64) (value, next Value, fraction float64) {
	if unitTime == 1 {
		// End-of-animation pinning: select the last value directly rather
		// than searching past the final interval boundary.
		return spec.values[len(spec.values)-1], nil, 0
	}

	// The last key time not exceeding unitTime wins. Key time lists are
	// small; a linear scan preserves declaration-order tie-breaking.
	k := 0
	for k < len(spec.keyTimes)-1 && unitTime >= spec.keyTimes[k+1] {
		k++
	}
	value = spec.values[k]

	if spec.calcMode == CalcModeDiscrete {
		return value, nil, 0
	}

	next = spec.values[k+1]
	fraction = (unitTime - spec.keyTimes[k]) / (spec.keyTimes[k+1] - spec.keyTimes[k])
	if spec.calcMode == CalcModeSpline && unitTime != 0 {
		fraction = spec.keySplineCubics[k].SolveYForX(fraction)
	}
	return value, next, fraction
}

// Sampler samples one animation. It owns the spec and the previously
// sampled value used for change detection, so a Sampler must not be
// shared across concurrent callers; use one Sampler per animation target.
// The spec itself is immutable and may back any number of Samplers.
type Sampler struct {
	spec *KeyframeSpec
	prev Value
}

// NewSampler returns a sampler for the given validated spec.
func NewSampler(spec *KeyframeSpec) *Sampler {
	return &Sampler{spec: spec}
}

// Spec returns the sampler's keyframe spec.
func (s *Sampler) Spec() *KeyframeSpec { return s.spec }

// SampleAt computes the animated value at the given unit time in [0, 1]
// for the given repeat iteration (0 for the first iteration). The second
// return value reports whether the value changed relative to the previous
// sample.
//
// A unit time outside [0, 1] is rejected with a [*SampleTimeError];
// sampling cannot otherwise fail.
func (s *Sampler) SampleAt(unitTime float64, repeatIteration int) (Value, bool, error) {
	if unitTime < 0 || unitTime > 1 || math.IsNaN(unitTime) {
		return nil, false, &SampleTimeError{UnitTime: unitTime}
	}

	value, next, fraction := s.spec.resolve(unitTime)

	var accumulation Value
	if s.spec.cumulative {
		accumulation = s.spec.values[len(s.spec.values)-1]
	}

	result := value.Interpolate(next, fraction, accumulation, repeatIteration)
	changed := s.prev == nil || !result.Equal(s.prev)
	s.prev = result
	return result, changed, nil
}

// SampleLast computes the animation's end value, as used for
// fill="freeze" semantics. It is equivalent to SampleAt(1, ...).
func (s *Sampler) SampleLast(repeatIteration int) (Value, bool, error) {
	return s.SampleAt(1, repeatIteration)
}

// SampleSimpleTime converts a simple time within the active duration to a
// unit time and samples there. An indefinite simple duration
// ([Indefinite]) pins the unit time to 0.
func (s *Sampler) SampleSimpleTime(simpleTime, simpleDuration float64, repeatIteration int) (Value, bool, error) {
	var unitTime float64
	if !math.IsInf(simpleDuration, 1) {
		unitTime = simpleTime / simpleDuration
	}
	return s.SampleAt(unitTime, repeatIteration)
}
