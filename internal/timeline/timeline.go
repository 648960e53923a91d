// Package timeline drives samplers across a frame timeline and composes
// the animation sandwich per target attribute.
package timeline

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ppark2017/batik/anim"
	"github.com/ppark2017/batik/internal/document"
)

// Trace holds one animation's sampled values, one per frame.
type Trace struct {
	Target   string
	Additive bool
	Values   []anim.Value
	Changed  []bool
}

// Result is a sampled timeline: the frame times, one trace per animation
// in document order, and the composited sandwich value per target.
type Result struct {
	Times      []float64
	Traces     []Trace
	Composited map[string][]anim.Value
}

// Run samples every animation in the document at the given frame rate.
// The timeline spans the longest animation (duration times repeats);
// animations that end earlier freeze at their final value. Each animation
// is sampled on its own goroutine; samplers are not shared.
func Run(doc *document.Document, fps int) (*Result, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if len(doc.Animations) == 0 {
		return nil, fmt.Errorf("document has no animations")
	}

	// Build all specs up front so configuration errors surface before any
	// sampling starts.
	specs := make([]*anim.KeyframeSpec, len(doc.Animations))
	for i := range doc.Animations {
		spec, err := doc.Animations[i].Build()
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}

	var total float64
	for i := range doc.Animations {
		a := &doc.Animations[i]
		if d := a.Duration * float64(repeats(a)); d > total {
			total = d
		}
	}

	frames := int(math.Round(total*float64(fps))) + 1
	times := make([]float64, frames)
	for f := range times {
		times[f] = float64(f) / float64(fps)
	}

	traces := make([]Trace, len(doc.Animations))
	var g errgroup.Group
	for i := range doc.Animations {
		a := &doc.Animations[i]
		spec := specs[i]
		trace := &traces[i]
		g.Go(func() error {
			return sample(a, spec, times, trace)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	composited, err := compose(doc, times, traces)
	if err != nil {
		return nil, err
	}
	return &Result{Times: times, Traces: traces, Composited: composited}, nil
}

func repeats(a *document.Animation) int {
	if a.Repeats <= 0 {
		return 1
	}
	return a.Repeats
}

// sample fills in one animation's trace. The sampler is confined to the
// calling goroutine.
func sample(a *document.Animation, spec *anim.KeyframeSpec, times []float64, trace *Trace) error {
	s := anim.NewSampler(spec)
	n := repeats(a)
	active := a.Duration * float64(n)

	trace.Target = a.Target
	trace.Additive = spec.Additive()
	trace.Values = make([]anim.Value, len(times))
	trace.Changed = make([]bool, len(times))

	for f, t := range times {
		var v anim.Value
		var changed bool
		var err error
		if t >= active {
			// Past the active end: freeze at the final value.
			v, changed, err = s.SampleLast(n - 1)
		} else {
			iter := int(t / a.Duration)
			if iter >= n {
				iter = n - 1
			}
			unit := t/a.Duration - float64(iter)
			v, changed, err = s.SampleAt(unit, iter)
		}
		if err != nil {
			return fmt.Errorf("animation %q at t=%g: %w", a.Target, t, err)
		}
		trace.Values[f] = v
		trace.Changed[f] = changed
	}
	return nil
}

// compose stacks the traces targeting each attribute: additive animations
// add onto the value below them in the sandwich, others replace it. The
// base of each sandwich is the underlying value of the lowest animation
// for that target.
func compose(doc *document.Document, times []float64, traces []Trace) (map[string][]anim.Value, error) {
	base := make(map[string]anim.Value)
	for i := range doc.Animations {
		a := &doc.Animations[i]
		if _, ok := base[a.Target]; ok {
			continue
		}
		u, err := a.UnderlyingValue()
		if err != nil {
			return nil, err
		}
		base[a.Target] = u
	}

	out := make(map[string][]anim.Value)
	for target, u := range base {
		vals := make([]anim.Value, len(times))
		for f := range times {
			v := u
			for _, trace := range traces {
				if trace.Target != target {
					continue
				}
				if trace.Additive {
					// Addition through the accumulation contract: keep v,
					// then add the layer's value once.
					v = v.Interpolate(nil, 0, trace.Values[f], 1)
				} else {
					v = trace.Values[f]
				}
			}
			vals[f] = v
		}
		out[target] = vals
	}
	return out, nil
}
