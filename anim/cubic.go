package anim

import "math"

// fractionTolerance is the accuracy, along the X axis, to which
// [Cubic.SolveYForX] inverts the pacing curve. It matches the precision
// SMIL implementations conventionally use for keySplines easing.
const fractionTolerance = 0.001

// maxSolveIterations caps the bisection in [Cubic.SolveYForX] so that the
// search terminates even when floating-point precision keeps the tolerance
// out of reach.
const maxSolveIterations = 64

// Cubic is a 2D cubic Bézier curve.
type Cubic struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// UnitCubic returns the cubic with endpoints fixed at (0, 0) and (1, 1)
// and the given interior control points. This is the form keySplines
// control points take: X is the input fraction, Y the eased fraction.
func UnitCubic(x1, y1, x2, y2 float64) Cubic {
	return Cubic{Pt(0, 0), Pt(x1, y1), Pt(x2, y2), Pt(1, 1)}
}

// Eval evaluates the curve at parameter t. Generally, t is in the range
// [0, 1]; values outside the range extrapolate the polynomial.
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// SolveYForX returns the Y coordinate of the curve at the parameter whose
// X coordinate equals x, found by bisection over t in [0, 1] to within
// [fractionTolerance] on X.
//
// For a unit easing cubic this maps a linear interpolation fraction to the
// eased fraction. The curve's X component must be monotonic on [0, 1],
// which holds for any unit cubic with control-point X values in [0, 1].
func (c Cubic) SolveYForX(x float64) float64 {
	lo, hi := 0.0, 1.0
	var p Point
	for i := 0; i < maxSolveIterations; i++ {
		t := 0.5 * (lo + hi)
		p = c.Eval(t)
		if math.Abs(p.X-x) < fractionTolerance {
			break
		}
		if p.X < x {
			lo = t
		} else {
			hi = t
		}
	}
	return p.Y
}
