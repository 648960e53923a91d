// Package values provides [anim.Value] implementations for common SVG
// attribute types: scalars, sRGB colors, and 2D point lists.
//
// All types are immutable; interpolation returns fresh values. The
// accumulation contract is uniform: the result of interpolating between
// two values is offset by the accumulation value scaled by the repeat
// iteration, which also makes additive sandwich composition expressible
// as Interpolate(nil, 0, upper, 1).
package values

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/ppark2017/batik/anim"
)

var (
	_ anim.Value = Float(0)
	_ anim.Value = Color{}
	_ anim.Value = Points(nil)
)

// Float is a scalar animatable value, for attributes such as opacity,
// stroke-width, or a rotation angle.
type Float float64

// Interpolate implements [anim.Value].
func (f Float) Interpolate(to anim.Value, fraction float64, accumulation anim.Value, repeatIteration int) anim.Value {
	res := float64(f)
	if to != nil {
		res += (float64(to.(Float)) - res) * fraction
	}
	if accumulation != nil {
		res += float64(accumulation.(Float)) * float64(repeatIteration)
	}
	return Float(res)
}

// Equal implements [anim.Value].
func (f Float) Equal(o anim.Value) bool {
	of, ok := o.(Float)
	return ok && of == f
}

// Zero implements [anim.Value].
func (f Float) Zero() anim.Value { return Float(0) }

func (f Float) String() string {
	return fmt.Sprintf("%g", float64(f))
}

// Color is an animatable sRGB color with channels in [0, 1]. Channels are
// not clamped during interpolation: an additive sandwich may leave the
// range mid-composition and only the final conversion via [Color.RGBA8]
// clamps.
type Color struct {
	R, G, B float64
}

// Interpolate implements [anim.Value].
func (c Color) Interpolate(to anim.Value, fraction float64, accumulation anim.Value, repeatIteration int) anim.Value {
	res := c
	if to != nil {
		t := to.(Color)
		res.R += (t.R - res.R) * fraction
		res.G += (t.G - res.G) * fraction
		res.B += (t.B - res.B) * fraction
	}
	if accumulation != nil {
		a := accumulation.(Color)
		n := float64(repeatIteration)
		res.R += a.R * n
		res.G += a.G * n
		res.B += a.B * n
	}
	return res
}

// Equal implements [anim.Value].
func (c Color) Equal(o anim.Value) bool {
	oc, ok := o.(Color)
	return ok && oc == c
}

// Zero implements [anim.Value].
func (c Color) Zero() anim.Value { return Color{} }

// RGBA8 converts the color to 8-bit RGBA, clamping each channel to
// [0, 1].
func (c Color) RGBA8() color.RGBA {
	conv := func(ch float64) uint8 {
		return uint8(math.Round(math.Min(math.Max(ch, 0), 1) * 255))
	}
	return color.RGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: 255}
}

// FromRGBA8 converts an 8-bit color to a Color, discarding alpha.
func FromRGBA8(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func (c Color) String() string {
	rgba := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// Points is an animatable ordered list of 2D points, for polyline and
// polygon attributes. Two point lists interpolate pairwise and therefore
// must have the same length; interpolation between lists of different
// lengths degrades to a discrete jump at fraction 0.5, mirroring how SVG
// animation falls back when values are not pairwise interpolable.
type Points []anim.Point

// Interpolate implements [anim.Value].
func (p Points) Interpolate(to anim.Value, fraction float64, accumulation anim.Value, repeatIteration int) anim.Value {
	res := make(Points, len(p))
	copy(res, p)
	if to != nil {
		t := to.(Points)
		if len(t) != len(p) {
			if fraction >= 0.5 {
				res = make(Points, len(t))
				copy(res, t)
			}
		} else {
			for i := range res {
				res[i] = res[i].Lerp(t[i], fraction)
			}
		}
	}
	if accumulation != nil {
		a := accumulation.(Points)
		if len(a) == len(res) {
			n := float64(repeatIteration)
			for i := range res {
				res[i] = res[i].Translate(anim.Vec(a[i].X*n, a[i].Y*n))
			}
		}
	}
	return res
}

// Equal implements [anim.Value].
func (p Points) Equal(o anim.Value) bool {
	op, ok := o.(Points)
	if !ok || len(op) != len(p) {
		return false
	}
	for i := range p {
		if p[i] != op[i] {
			return false
		}
	}
	return true
}

// Zero implements [anim.Value].
//
// The zero of a point list keeps the list's length, so that a
// by-animation of points starts from the origin for every pair.
func (p Points) Zero() anim.Value {
	return make(Points, len(p))
}

func (p Points) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = fmt.Sprintf("%g,%g", pt.X, pt.Y)
	}
	return strings.Join(parts, " ")
}
