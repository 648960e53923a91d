package anim

import "fmt"

// CalcMode selects the interpolation discipline of an animation. It is
// fixed when the [KeyframeSpec] is constructed.
type CalcMode int

const (
	// CalcModeLinear interpolates linearly between keyframe values. It is
	// the default mode.
	CalcModeLinear CalcMode = iota
	// CalcModeDiscrete jumps from one value to the next without
	// interpolation.
	CalcModeDiscrete
	// CalcModePaced produces an even pace of change across the animation.
	// True paced timing requires a distance metric per value type, which
	// the engine does not define; see the package documentation for the
	// behavior actually implemented.
	CalcModePaced
	// CalcModeSpline interpolates linearly, with the interpolation
	// fraction within each interval eased through a cubic Bézier given by
	// keySplines control points.
	CalcModeSpline
)

func (m CalcMode) String() string {
	switch m {
	case CalcModeLinear:
		return "linear"
	case CalcModeDiscrete:
		return "discrete"
	case CalcModePaced:
		return "paced"
	case CalcModeSpline:
		return "spline"
	default:
		return fmt.Sprintf("CalcMode(%d)", int(m))
	}
}
