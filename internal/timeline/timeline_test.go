package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppark2017/batik/anim"
	"github.com/ppark2017/batik/anim/values"
	"github.com/ppark2017/batik/internal/document"
)

func TestRunSingleAnimation(t *testing.T) {
	doc := &document.Document{
		Animations: []document.Animation{
			{Target: "opacity", Type: "float", From: "0", To: "10", Duration: 2},
		},
	}
	result, err := Run(doc, 10)
	require.NoError(t, err)

	// 2 seconds at 10 fps, endpoints included.
	require.Len(t, result.Times, 21)
	require.Len(t, result.Traces, 1)

	trace := result.Traces[0]
	assert.Equal(t, values.Float(0), trace.Values[0])
	assert.Equal(t, values.Float(5), trace.Values[10])
	assert.Equal(t, values.Float(10), trace.Values[20])
	assert.True(t, trace.Changed[0], "first frame establishes the value")
}

func TestRunSandwich(t *testing.T) {
	doc := &document.Document{
		Animations: []document.Animation{
			{Target: "x", Type: "float", From: "10", To: "20", Duration: 1, Underlying: "5"},
			{Target: "x", Type: "float", By: "100", Duration: 1},
		},
	}
	result, err := Run(doc, 10)
	require.NoError(t, err)

	comp := result.Composited["x"]
	require.Len(t, comp, 11)
	// The replacing animation overrides the underlying value; the additive
	// by-animation stacks on top of it.
	assert.Equal(t, values.Float(10), comp[0])
	assert.InDelta(t, 15+50, float64(comp[5].(values.Float)), 1e-9)
	assert.Equal(t, values.Float(120), comp[10])
}

func TestRunFreezesShorterAnimations(t *testing.T) {
	doc := &document.Document{
		Animations: []document.Animation{
			{Target: "a", Type: "float", From: "0", To: "1", Duration: 1},
			{Target: "b", Type: "float", From: "0", To: "1", Duration: 2},
		},
	}
	result, err := Run(doc, 4)
	require.NoError(t, err)

	require.Len(t, result.Times, 9)
	a := result.Traces[0]
	// Past its 1s active duration, animation a holds its end value.
	for f := 4; f < 9; f++ {
		assert.Equal(t, values.Float(1), a.Values[f], "frame %d", f)
	}
	assert.False(t, a.Changed[6], "frozen value must not report changes")
}

func TestRunRepeatsAccumulate(t *testing.T) {
	doc := &document.Document{
		Animations: []document.Animation{
			{Target: "x", Type: "float", From: "0", To: "10", Duration: 1, Repeats: 3, Cumulative: true},
		},
	}
	result, err := Run(doc, 2)
	require.NoError(t, err)

	trace := result.Traces[0]
	require.Len(t, trace.Values, 7)
	// t=0.5: first iteration, no accumulation.
	assert.Equal(t, values.Float(5), trace.Values[1])
	// t=1.5: second iteration carries one end value.
	assert.Equal(t, values.Float(15), trace.Values[3])
	// t=2.5: third iteration carries two.
	assert.Equal(t, values.Float(25), trace.Values[5])
	// t=3: frozen at the final accumulated value.
	assert.Equal(t, values.Float(30), trace.Values[6])
}

func TestRunErrors(t *testing.T) {
	_, err := Run(&document.Document{}, 10)
	assert.Error(t, err)

	doc := &document.Document{
		Animations: []document.Animation{
			{Target: "x", Type: "float", From: "0", To: "1", Duration: 1},
		},
	}
	_, err = Run(doc, 0)
	assert.Error(t, err)

	bad := &document.Document{
		Animations: []document.Animation{
			{Target: "x", Type: "float", From: "0", Duration: 1},
		},
	}
	_, err = Run(bad, 10)
	var cfg *anim.ConfigError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, anim.MissingEndValue, cfg.Kind)
}
