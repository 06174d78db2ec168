// Package numfmt provides trimmed fixed-precision formatting for float64
// values. A value is rounded or truncated to a bounded number of decimal
// digits before formatting, then trailing fractional zeros (and a dangling
// decimal point) are stripped, so 2.000 renders as "2" and 1.500 as "1.5".
//
// The package is independent of the measurement types; it formats plain
// numbers and is shared by the CLI and the HTTP layer.
package numfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNonFinite is returned when the value to format is NaN or ±Inf.
// Non-finite values are unsupported input, not a formatting case.
var ErrNonFinite = errors.New("non-finite value")

// Mode selects how the value is reduced to the requested precision.
type Mode int

const (
	// ModeRound rounds to the nearest representable value at the given
	// precision, halves away from zero (the platform's math.Round).
	ModeRound Mode = iota

	// ModeTrunc truncates toward zero at the given precision.
	ModeTrunc
)

// String implements fmt.Stringer for Mode.
func (m Mode) String() string {
	switch m {
	case ModeTrunc:
		return "trunc"
	default:
		return "round"
	}
}

// ParseMode parses a mode name ("round", "trunc"). The empty string maps
// to ModeRound so callers can treat the mode as optional.
//
// Parameters:
//   - name: the mode name
//
// Returns:
//   - Mode: the parsed mode
//   - bool: false if the name is not a known mode
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(name) {
	case "", "round":
		return ModeRound, true
	case "trunc", "truncate":
		return ModeTrunc, true
	}
	return ModeRound, false
}

// Format renders value with at most precision fractional digits and trims
// trailing fractional zeros. The rounding step happens before string
// formatting, so values that round up past a power of ten come out right
// (9.996 at precision 2 renders as "10", not "9.99…").
//
// A precision of 0 yields an integer-looking string with no decimal
// point. Negative precision is clamped to 0. The sign survives trimming.
//
// Parameters:
//   - value: the finite value to format
//   - precision: maximum fractional digits to retain before trimming
//   - mode: rounding policy (ModeRound or ModeTrunc)
//
// Returns:
//   - string: the formatted number
//   - error: ErrNonFinite if value is NaN or ±Inf
func Format(value float64, precision int, mode Mode) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", ErrNonFinite
	}
	if precision < 0 {
		precision = 0
	}

	factor := math.Pow(10, float64(precision))
	var scaled float64
	switch mode {
	case ModeTrunc:
		scaled = math.Trunc(value * factor)
	default:
		scaled = math.Round(value * factor)
	}
	reduced := scaled / factor

	s := strconv.FormatFloat(reduced, 'f', precision, 64)
	if precision > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s, nil
}

// Number pairs a value with its formatting options so it can be handed
// directly to fmt printing verbs. It is the ordinary-function replacement
// for a formatting macro: construct it, print it, discard it.
//
// Example usage:
//
//	fmt.Printf("Temp = %s °C\n", numfmt.Rounded(26.444, 2)) // Temp = 26.44 °C
type Number struct {
	// Value is the number to render.
	Value float64

	// Precision is the maximum number of fractional digits.
	Precision int

	// Mode is the rounding policy.
	Mode Mode
}

// Rounded creates a Number that rounds to the nearest value at the given
// precision.
//
// Parameters:
//   - value: the number to render
//   - precision: maximum fractional digits
//
// Returns:
//   - Number: the display value
func Rounded(value float64, precision int) Number {
	return Number{Value: value, Precision: precision, Mode: ModeRound}
}

// Truncated creates a Number that truncates toward zero at the given
// precision.
//
// Parameters:
//   - value: the number to render
//   - precision: maximum fractional digits
//
// Returns:
//   - Number: the display value
func Truncated(value float64, precision int) Number {
	return Number{Value: value, Precision: precision, Mode: ModeTrunc}
}

// String implements fmt.Stringer. Non-finite values cannot surface an
// error here, so they fall back to strconv's general formatting; callers
// that need the error should use Format directly.
func (n Number) String() string {
	s, err := Format(n.Value, n.Precision, n.Mode)
	if err != nil {
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	}
	return s
}
