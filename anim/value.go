package anim

// Value is the capability the engine requires of an animatable value. The
// engine is fully generic over the concrete representation; it never
// inspects a value beyond this interface. Package
// [github.com/ppark2017/batik/anim/values] provides implementations for
// common SVG attribute types.
//
// Implementations are expected to be immutable: Interpolate returns a new
// value and must not modify the receiver or its arguments.
type Value interface {
	// Interpolate combines the receiver with the given arguments into the
	// sampled value:
	//
	//	result = lerp(receiver, to, fraction) + accumulation × repeatIteration
	//
	// A nil to means no interpolation: the receiver is used as-is
	// (discrete steps and end-of-animation pinning). A nil accumulation
	// means no accumulated contribution. Mixing incompatible concrete
	// types is a programmer error and panics.
	Interpolate(to Value, fraction float64, accumulation Value, repeatIteration int) Value

	// Equal reports whether two values are equal. The engine uses it to
	// detect whether a newly sampled value changed relative to the
	// previous sample.
	Equal(o Value) bool

	// Zero returns the zero value of the receiver's type, used as the
	// implicit starting point of a by-animation.
	Zero() Value
}
