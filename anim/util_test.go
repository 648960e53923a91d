package anim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// num is a scalar test value. The engine is generic over the value
// representation, so the tests bring their own.
type num float64

func (n num) Interpolate(to Value, fraction float64, accumulation Value, repeatIteration int) Value {
	res := float64(n)
	if to != nil {
		res += (float64(to.(num)) - res) * fraction
	}
	if accumulation != nil {
		res += float64(accumulation.(num)) * float64(repeatIteration)
	}
	return num(res)
}

func (n num) Equal(o Value) bool {
	on, ok := o.(num)
	return ok && on == n
}

func (n num) Zero() Value { return num(0) }

func nums(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = num(v)
	}
	return out
}
