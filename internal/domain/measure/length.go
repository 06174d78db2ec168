package measure

// Constants for length conversions.
const (
	// metersPerKilometer is the number of meters in one kilometer.
	metersPerKilometer = 1000.0

	// metersPerFoot is the exact international foot definition.
	metersPerFoot = 0.3048
)

// Length unit catalog. Meter is the base unit: both of its conversion
// functions are the identity.
var (
	// Meter is the SI unit of length and the base unit of the length
	// dimension.
	Meter = Unit[LengthDimension]{
		toBase:   func(v float64) float64 { return v },
		fromBase: func(v float64) float64 { return v },
		symbol:   "m",
	}

	// Kilometer is exactly 1000 meters.
	Kilometer = Unit[LengthDimension]{
		toBase:   func(v float64) float64 { return v * metersPerKilometer },
		fromBase: func(v float64) float64 { return v / metersPerKilometer },
		symbol:   "km",
	}

	// Foot is the international foot, exactly 0.3048 meters.
	Foot = Unit[LengthDimension]{
		toBase:   func(v float64) float64 { return v * metersPerFoot },
		fromBase: func(v float64) float64 { return v / metersPerFoot },
		symbol:   "ft",
	}
)
