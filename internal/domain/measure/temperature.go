package measure

// Constants for temperature conversions.
const (
	// celsiusKelvinOffset is the exact offset between the Celsius and
	// Kelvin scales.
	celsiusKelvinOffset = 273.15

	// fahrenheitFreezing is the freezing point of water on the
	// Fahrenheit scale.
	fahrenheitFreezing = 32.0

	// fahrenheitDegreeRatio is the size of a Kelvin expressed in
	// Fahrenheit degrees.
	fahrenheitDegreeRatio = 9.0 / 5.0

	// celsiusDegreeRatio is the size of a Fahrenheit degree expressed
	// in Kelvin.
	celsiusDegreeRatio = 5.0 / 9.0
)

// Temperature unit catalog. Kelvin is the base unit: both of its
// conversion functions are the identity.
var (
	// Kelvin is the absolute temperature scale and the base unit of the
	// temperature dimension.
	Kelvin = Unit[TemperatureDimension]{
		toBase:   func(v float64) float64 { return v },
		fromBase: func(v float64) float64 { return v },
		symbol:   "K",
	}

	// Celsius places the freezing point of water at 0 °C and the
	// boiling point at 100 °C at standard pressure.
	Celsius = Unit[TemperatureDimension]{
		toBase:   func(v float64) float64 { return v + celsiusKelvinOffset },
		fromBase: func(v float64) float64 { return v - celsiusKelvinOffset },
		symbol:   "°C",
	}

	// Fahrenheit places the freezing point of water at 32 °F and the
	// boiling point at 212 °F at standard pressure.
	Fahrenheit = Unit[TemperatureDimension]{
		toBase: func(v float64) float64 {
			return (v-fahrenheitFreezing)*celsiusDegreeRatio + celsiusKelvinOffset
		},
		fromBase: func(v float64) float64 {
			return (v-celsiusKelvinOffset)*fahrenheitDegreeRatio + fahrenheitFreezing
		},
		symbol: "°F",
	}
)
