package values

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ppark2017/batik/anim"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestFloatInterpolate(t *testing.T) {
	diff(t, Float(5), Float(0).Interpolate(Float(10), 0.5, nil, 0))
	diff(t, Float(0), Float(0).Interpolate(Float(10), 0, nil, 0))
	// No next value: the receiver is used as-is.
	diff(t, Float(3), Float(3).Interpolate(nil, 0.5, nil, 0))
	// Accumulation scales with the repeat iteration.
	diff(t, Float(25), Float(0).Interpolate(Float(10), 0.5, Float(10), 2))
}

func TestFloatEqual(t *testing.T) {
	if !Float(3).Equal(Float(3)) {
		t.Error("equal floats reported unequal")
	}
	if Float(3).Equal(Float(4)) {
		t.Error("unequal floats reported equal")
	}
	if Float(3).Equal(Color{}) {
		t.Error("float equal to a color")
	}
}

func TestColorInterpolate(t *testing.T) {
	black := Color{}
	white := Color{R: 1, G: 1, B: 1}
	diff(t, Color{R: 0.5, G: 0.5, B: 0.5}, black.Interpolate(white, 0.5, nil, 0))

	red := Color{R: 1}
	green := Color{G: 1}
	// Additive accumulation may leave [0, 1]; RGBA8 clamps.
	over := red.Interpolate(nil, 0, green, 2).(Color)
	diff(t, Color{R: 1, G: 2}, over)
	diff(t, color.RGBA{R: 255, G: 255, A: 255}, over.RGBA8())
}

func TestColorString(t *testing.T) {
	if got := (Color{R: 1, G: 0.5}).String(); got != "#ff8000" {
		t.Errorf("got %q, want %q", got, "#ff8000")
	}
}

func TestColorRGBA8RoundTrip(t *testing.T) {
	orig := color.RGBA{R: 18, G: 52, B: 86, A: 255}
	diff(t, orig, FromRGBA8(orig).RGBA8())
}

func TestPointsInterpolate(t *testing.T) {
	a := Points{anim.Pt(0, 0), anim.Pt(10, 0)}
	b := Points{anim.Pt(0, 10), anim.Pt(10, 10)}
	diff(t, Points{anim.Pt(0, 5), anim.Pt(10, 5)}, a.Interpolate(b, 0.5, nil, 0), cmpopts.EquateApprox(0, 1e-12))

	// Length mismatch degrades to a discrete jump at fraction 0.5.
	c := Points{anim.Pt(1, 1)}
	diff(t, a, a.Interpolate(c, 0.4, nil, 0))
	diff(t, c, a.Interpolate(c, 0.6, nil, 0))
}

func TestPointsAccumulate(t *testing.T) {
	a := Points{anim.Pt(1, 1)}
	acc := Points{anim.Pt(2, 3)}
	diff(t, Points{anim.Pt(5, 7)}, a.Interpolate(nil, 0, acc, 2))
}

func TestPointsZero(t *testing.T) {
	p := Points{anim.Pt(1, 2), anim.Pt(3, 4)}
	diff(t, Points{anim.Pt(0, 0), anim.Pt(0, 0)}, p.Zero())
}

func TestPointsString(t *testing.T) {
	p := Points{anim.Pt(1, 2), anim.Pt(3.5, 4)}
	if got := p.String(); got != "1,2 3.5,4" {
		t.Errorf("got %q, want %q", got, "1,2 3.5,4")
	}
}

func TestValuesAnimateEndToEnd(t *testing.T) {
	// A by-animation of a color, driven through the engine.
	spec, err := anim.NewKeyframeSpec(anim.Params{
		By: Color{R: 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !spec.Additive() {
		t.Fatal("by-animation must be additive")
	}
	s := anim.NewSampler(spec)
	v, _, err := s.SampleAt(0.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Color{R: 0.25}, v)
}
