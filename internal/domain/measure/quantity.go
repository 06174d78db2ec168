// Package measure contains the unit-safe measurement types of the domain layer.
package measure

// Quantity is an immutable magnitude in dimension D, stored internally in
// the base unit of the dimension (Kelvin for temperature, meters for
// length). All conversions are two-hop: source unit to base on
// construction, base to target unit on read. This keeps conversion code
// O(1) per unit (one function pair each) instead of O(n²) pairwise
// converters.
//
// Because the dimension is part of the type, converting a temperature to a
// length does not compile:
//
//	t := measure.FromUnit(measure.Celsius, 25.0)
//	_ = t.ToUnit(measure.Fahrenheit) // ok
//	_ = t.ToUnit(measure.Meter)      // compile error: wrong dimension
//
// Quantity has value semantics: copy it freely, share it across
// goroutines without synchronization.
type Quantity[D any] struct {
	// base is the magnitude in the base unit of dimension D.
	base float64
}

// Temperature is a quantity in the temperature dimension, stored in Kelvin.
type Temperature = Quantity[TemperatureDimension]

// Length is a quantity in the length dimension, stored in meters.
type Length = Quantity[LengthDimension]

// FromUnit creates a Quantity from a value expressed in the given unit.
// The value is converted to the base unit immediately, so quantities of
// the same dimension always share one internal representation.
//
// Parameters:
//   - u: the source unit (fixes the dimension of the result)
//   - value: the magnitude in units of u
//
// Returns:
//   - Quantity[D]: the created quantity
//
// Example usage:
//
//	freezing := measure.FromUnit(measure.Celsius, 0.0)
//	freezing.ToUnit(measure.Fahrenheit) // 32.0
func FromUnit[D any](u Unit[D], value float64) Quantity[D] {
	return Quantity[D]{base: u.ToBase(value)}
}

// ToUnit returns the magnitude of the quantity expressed in the given
// unit. The unit must belong to the same dimension as the quantity; the
// compiler rejects anything else.
//
// Parameters:
//   - u: the target unit
//
// Returns:
//   - float64: the magnitude in units of u
func (q Quantity[D]) ToUnit(u Unit[D]) float64 {
	return u.FromBase(q.base)
}

// Base returns the raw magnitude in the base unit of the dimension.
// Intended for diagnostics; prefer ToUnit for anything user facing.
//
// Returns:
//   - float64: the stored base-unit magnitude
func (q Quantity[D]) Base() float64 {
	return q.base
}

// Convert converts a value from one unit to another within the same
// dimension. It is shorthand for FromUnit followed by ToUnit and goes
// through the base unit like every conversion in this package.
//
// Parameters:
//   - value: the magnitude in units of from
//   - from: the source unit
//   - to: the target unit
//
// Returns:
//   - float64: the magnitude in units of to
func Convert[D any](value float64, from, to Unit[D]) float64 {
	return FromUnit(from, value).ToUnit(to)
}
