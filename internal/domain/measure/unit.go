// Package measure contains the unit-safe measurement types of the domain layer.
// A measurement is a value object: immutable, compared by value, and free of
// side effects. Every magnitude is stored in the base unit of its dimension
// and converted on demand to any unit of the same dimension.
//
// The package follows these principles:
//   - Immutability: a Quantity never changes after construction.
//   - Dimension safety: conversions between different dimensions
//     (e.g., temperature to length) are rejected at compile time.
//   - Closed catalogs: the unit set per dimension is fixed and finite;
//     there is no runtime registration of new units.
package measure

// TemperatureDimension is the marker type for the temperature dimension.
// It is never instantiated; it exists only as a type argument so that
// temperature units cannot be mixed with units of other dimensions.
type TemperatureDimension struct{}

// LengthDimension is the marker type for the length dimension.
// It is never instantiated; it exists only as a type argument so that
// length units cannot be mixed with units of other dimensions.
type LengthDimension struct{}

// Unit describes a concrete unit of measure within dimension D.
// It carries a pair of pure conversion functions to and from the base unit
// of the dimension, plus a display symbol.
//
// Both conversion functions are total over the float64 domain: no physical
// plausibility is validated (a Kelvin value below zero converts like any
// other number).
//
// Exactly one unit per dimension uses identity functions in both
// directions; that unit is the base unit of the dimension. This is a
// documented convention of the catalogs in this package, not something a
// type enforces.
//
// The fields are unexported on purpose: units form a closed catalog
// declared in this package (see temperature.go and length.go), and new
// units are added by extending the catalog, not by constructing Unit
// values elsewhere.
type Unit[D any] struct {
	// toBase converts a value expressed in this unit to the base unit.
	toBase func(value float64) float64

	// fromBase converts a value expressed in the base unit to this unit.
	fromBase func(value float64) float64

	// symbol is the display symbol (e.g., "°C", "km").
	symbol string
}

// ToBase converts a value expressed in this unit to the base unit of the
// dimension.
//
// Parameters:
//   - value: the magnitude in this unit
//
// Returns:
//   - float64: the magnitude in the base unit
func (u Unit[D]) ToBase(value float64) float64 {
	return u.toBase(value)
}

// FromBase converts a value expressed in the base unit of the dimension
// to this unit.
//
// Parameters:
//   - value: the magnitude in the base unit
//
// Returns:
//   - float64: the magnitude in this unit
func (u Unit[D]) FromBase(value float64) float64 {
	return u.fromBase(value)
}

// Symbol returns the display symbol of the unit (e.g., "°C", "km").
//
// Returns:
//   - string: the unit symbol
func (u Unit[D]) Symbol() string {
	return u.symbol
}

// String implements fmt.Stringer and returns the unit symbol.
func (u Unit[D]) String() string {
	return u.symbol
}
