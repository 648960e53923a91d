package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppark2017/batik/anim"
	"github.com/ppark2017/batik/anim/values"
)

const sampleDoc = `
version: "1.0"
animations:
  - target: opacity
    type: float
    from: "0"
    to: "1"
    duration: 2
  - target: fill
    type: color
    values: ["crimson", "#0000ff"]
    calcMode: discrete
    duration: 2
  - target: points
    type: points
    from: "0,0 10,0"
    by: "0,5 0,5"
    duration: 1
    repeats: 3
`

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", doc.Version)
	require.Len(t, doc.Animations, 3)
	assert.Equal(t, "opacity", doc.Animations[0].Target)
	assert.Equal(t, 3, doc.Animations[2].Repeats)

	for i := range doc.Animations {
		_, err := doc.Animations[i].Build()
		assert.NoError(t, err, "animation %d", i)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	doc := &Document{
		Version: "1.0",
		Animations: []Animation{
			{Target: "opacity", Type: "float", From: "0", To: "1", Duration: 2},
		},
	}
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, Write(doc, path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		a    Animation
	}{
		{"missing target", Animation{Type: "float", To: "1", Duration: 1}},
		{"missing duration", Animation{Target: "x", Type: "float", To: "1"}},
		{"bad calcMode", Animation{Target: "x", Type: "float", From: "0", To: "1", Duration: 1, CalcMode: "cubic"}},
		{"bad literal", Animation{Target: "x", Type: "float", From: "zero", To: "1", Duration: 1}},
		{"no end value", Animation{Target: "x", Type: "float", From: "0", Duration: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.a.Build()
			assert.Error(t, err)
		})
	}
}

func TestBuildToAnimation(t *testing.T) {
	a := Animation{Target: "x", Type: "float", To: "10", Underlying: "4", Duration: 1}
	spec, err := a.Build()
	require.NoError(t, err)
	assert.True(t, spec.IsToAnimation())

	s := anim.NewSampler(spec)
	v, _, err := s.SampleAt(0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, values.Float(7), v)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("float", "2.5")
	require.NoError(t, err)
	assert.Equal(t, values.Float(2.5), v)

	v, err = ParseValue("color", "#336699")
	require.NoError(t, err)
	assert.Equal(t, values.Color{R: 0x33 / 255.0, G: 0x66 / 255.0, B: 0x99 / 255.0}, v)

	v, err = ParseValue("color", "SteelBlue")
	require.NoError(t, err)
	assert.Equal(t, "#4682b4", v.(values.Color).String())

	v, err = ParseValue("points", "0,0 10,5")
	require.NoError(t, err)
	assert.Equal(t, values.Points{anim.Pt(0, 0), anim.Pt(10, 5)}, v)

	for _, bad := range []struct{ typ, lit string }{
		{"float", "abc"},
		{"color", "#12345"},
		{"color", "notacolor"},
		{"points", "1;2"},
		{"points", ""},
		{"matrix", "1"},
	} {
		_, err := ParseValue(bad.typ, bad.lit)
		assert.Error(t, err, "%s %q", bad.typ, bad.lit)
	}
}

func TestUnderlyingValueDefaultsToZero(t *testing.T) {
	a := Animation{Target: "x", Type: "color", Duration: 1}
	v, err := a.UnderlyingValue()
	require.NoError(t, err)
	assert.Equal(t, values.Color{}, v)
}
