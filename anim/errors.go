package anim

import "fmt"

// ErrorKind identifies the structural problem a [ConfigError] reports.
type ErrorKind int

const (
	// MissingEndValue means none of values, to, or by resolved an end
	// value for the animation.
	MissingEndValue ErrorKind = iota + 1
	// InvalidKeyTimes means the keyTimes list has the wrong length, a
	// boundary violation, an out-of-range entry, or is not
	// non-decreasing.
	InvalidKeyTimes
	// InvalidKeySplines means the keySplines list does not contain
	// exactly four control floats per keyframe interval.
	InvalidKeySplines
)

func (k ErrorKind) String() string {
	switch k {
	case MissingEndValue:
		return "missing end value"
	case InvalidKeyTimes:
		return "invalid keyTimes"
	case InvalidKeySplines:
		return "invalid keySplines"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ConfigError reports a structurally invalid animation specification,
// detected when the [KeyframeSpec] is constructed. The engine never
// repairs an invalid specification; the caller that builds the animation
// decides whether to disable it or abort.
type ConfigError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Is reports whether target is a *ConfigError of the same kind, so that
// callers can match on kind with errors.Is using a kind-only target.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.Kind == e.Kind
}

func configErrorf(kind ErrorKind, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// SampleTimeError reports a unit time outside [0, 1] passed to
// [Sampler.SampleAt]. This is a caller contract violation, distinct from
// the construction-time [ConfigError] taxonomy: a validated spec cannot
// fail to sample for in-range inputs.
type SampleTimeError struct {
	UnitTime float64
}

func (e *SampleTimeError) Error() string {
	return fmt.Sprintf("unit time %g outside [0, 1]", e.UnitTime)
}
