// Package anim samples keyframe animations: given a point in an
// animation's active duration, normalized to the unit interval, it
// computes the value the animated attribute should take at that instant.
// It implements the value-computation semantics of SMIL 'animate'
// elements as used by SVG.
//
// # Model
//
// A declarative animation ([Params]) is validated and normalized once
// into an immutable [KeyframeSpec]: a canonical list of values and
// matching unit-time boundaries, with calc-mode-specific easing attached.
// The usual SMIL shorthands are applied during construction: from/to,
// from/by, a bare to (a "to-animation", interpolating from the
// attribute's pre-animation value), and a bare by (an additive animation
// from zero). All structural problems — missing end values, malformed
// keyTimes, the wrong number of keySplines control floats — surface here
// as [*ConfigError], never later.
//
// A [Sampler] then answers point queries. [Sampler.SampleAt] takes a unit
// time and a repeat-iteration counter and returns the animated value plus
// a flag for whether it changed since the previous sample. The engine is
// generic over the value representation: anything implementing [Value]
// can be animated, and type-specific interpolation stays outside the
// engine.
//
// How animations targeting the same attribute combine — the "animation
// sandwich" — is the host's concern; [KeyframeSpec.Additive] and
// [KeyframeSpec.Cumulative] expose the composition hints the host needs.
//
// # Paced timing
//
// True calcMode="paced" timing distributes keyframes so the value covers
// equal distance per unit time, which requires a distance metric per
// value type. The engine does not define such a metric; [CalcModePaced]
// instead interpolates linearly over evenly spaced key times. Callers
// that need accurate paced timing should precompute values and keyTimes
// with their own metric and use [CalcModeLinear].
//
// # Concurrency
//
// A KeyframeSpec is immutable after construction and safe for concurrent
// readers. A Sampler holds per-animation state and must be confined to
// one goroutine (or externally synchronized); the intended design is one
// Sampler per animation target, driven by a single sampling loop.
package anim
