// Package document defines the YAML animation document the animtrace
// tool consumes, and turns its declarative entries into validated
// sampling specs.
package document

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/ppark2017/batik/anim"
	"github.com/ppark2017/batik/anim/values"
)

// Document is a complete animation document: a set of animations, each
// targeting a named attribute. Animations listed later sit higher in the
// sandwich for their target.
type Document struct {
	Version    string      `yaml:"version"`
	Animations []Animation `yaml:"animations"`
}

// Animation mirrors the declarative attributes of a SMIL 'animate'
// element. Value-carrying fields hold literals in the syntax of Type:
// a decimal number, a "#rrggbb" or SVG keyword color, or a
// space-separated "x,y" point list.
type Animation struct {
	Target string `yaml:"target"`
	Type   string `yaml:"type"` // float, color, points

	CalcMode   string    `yaml:"calcMode,omitempty"`
	Values     []string  `yaml:"values,omitempty"`
	From       string    `yaml:"from,omitempty"`
	To         string    `yaml:"to,omitempty"`
	By         string    `yaml:"by,omitempty"`
	KeyTimes   []float64 `yaml:"keyTimes,omitempty"`
	KeySplines []float64 `yaml:"keySplines,omitempty"`

	Additive   bool `yaml:"additive,omitempty"`
	Cumulative bool `yaml:"cumulative,omitempty"`

	// Duration is the simple duration of one repeat iteration, in
	// seconds. Repeats counts iterations; 0 means 1.
	Duration float64 `yaml:"duration"`
	Repeats  int     `yaml:"repeats,omitempty"`

	// Underlying is the value the target attribute has before any
	// animation applies. Required for a bare-to animation and used as
	// the base of the sandwich.
	Underlying string `yaml:"underlying,omitempty"`
}

// Read reads an animation document from a YAML file.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// Write writes an animation document to a YAML file.
func Write(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build validates the animation and constructs its keyframe spec.
func (a *Animation) Build() (*anim.KeyframeSpec, error) {
	if a.Target == "" {
		return nil, fmt.Errorf("animation without target")
	}
	if a.Duration <= 0 {
		return nil, fmt.Errorf("animation %q: duration must be positive, got %g", a.Target, a.Duration)
	}

	mode, err := parseCalcMode(a.CalcMode)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", a.Target, err)
	}

	p := anim.Params{
		CalcMode:   mode,
		KeyTimes:   a.KeyTimes,
		KeySplines: a.KeySplines,
		Additive:   a.Additive,
		Cumulative: a.Cumulative,
	}

	for _, v := range a.Values {
		val, err := ParseValue(a.Type, v)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", a.Target, err)
		}
		p.Values = append(p.Values, val)
	}
	if p.From, err = a.optional(a.From); err != nil {
		return nil, err
	}
	if p.To, err = a.optional(a.To); err != nil {
		return nil, err
	}
	if p.By, err = a.optional(a.By); err != nil {
		return nil, err
	}

	if a.Underlying != "" {
		underlying, err := ParseValue(a.Type, a.Underlying)
		if err != nil {
			return nil, fmt.Errorf("animation %q: underlying: %w", a.Target, err)
		}
		p.Underlying = func() anim.Value { return underlying }
	}

	spec, err := anim.NewKeyframeSpec(p)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", a.Target, err)
	}
	return spec, nil
}

// UnderlyingValue parses the animation's declared underlying value, or
// returns the type's zero value when none is declared.
func (a *Animation) UnderlyingValue() (anim.Value, error) {
	if a.Underlying == "" {
		zero, err := ParseValue(a.Type, zeroLiteral(a.Type))
		if err != nil {
			return nil, err
		}
		return zero, nil
	}
	v, err := ParseValue(a.Type, a.Underlying)
	if err != nil {
		return nil, fmt.Errorf("animation %q: underlying: %w", a.Target, err)
	}
	return v, nil
}

func (a *Animation) optional(literal string) (anim.Value, error) {
	if literal == "" {
		return nil, nil
	}
	v, err := ParseValue(a.Type, literal)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", a.Target, err)
	}
	return v, nil
}

func zeroLiteral(typ string) string {
	switch typ {
	case "color":
		return "#000000"
	case "points":
		return "0,0"
	default:
		return "0"
	}
}

func parseCalcMode(s string) (anim.CalcMode, error) {
	switch s {
	case "", "linear":
		return anim.CalcModeLinear, nil
	case "discrete":
		return anim.CalcModeDiscrete, nil
	case "paced":
		return anim.CalcModePaced, nil
	case "spline":
		return anim.CalcModeSpline, nil
	default:
		return 0, fmt.Errorf("unknown calcMode %q", s)
	}
}

// ParseValue parses a value literal in the syntax of the given type.
func ParseValue(typ, s string) (anim.Value, error) {
	s = strings.TrimSpace(s)
	switch typ {
	case "", "float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float literal %q", s)
		}
		return values.Float(f), nil
	case "color":
		return parseColor(s)
	case "points":
		return parsePoints(s)
	default:
		return nil, fmt.Errorf("unknown value type %q", typ)
	}
}

func parseColor(s string) (anim.Value, error) {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return nil, fmt.Errorf("bad color literal %q", s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad color literal %q", s)
		}
		return values.Color{
			R: float64(n>>16&0xff) / 255,
			G: float64(n>>8&0xff) / 255,
			B: float64(n&0xff) / 255,
		}, nil
	}
	// SVG color keywords share the X11 name table.
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("unknown color name %q", s)
	}
	return values.FromRGBA8(c), nil
}

func parsePoints(s string) (anim.Value, error) {
	var pts values.Points
	for _, field := range strings.Fields(s) {
		x, y, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("bad point %q", field)
		}
		fx, errX := strconv.ParseFloat(x, 64)
		fy, errY := strconv.ParseFloat(y, 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("bad point %q", field)
		}
		pts = append(pts, anim.Pt(fx, fy))
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("empty point list %q", s)
	}
	return pts, nil
}
