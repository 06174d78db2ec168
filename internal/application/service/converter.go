// Package service contains the application services (use cases).
// Services orchestrate the domain layer and translate between transport
// DTOs and domain types.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/internal/domain/measure"
	"github.com/hapkiduki/measure-go/pkg/numfmt"
)

// Converter errors define the failure conditions of name-based conversion.
// The generic domain API rejects cross-dimension conversion at compile
// time; these errors cover the same misuse arriving as strings.
var (
	// ErrUnknownUnit is returned when a unit name matches no catalog entry.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrDimensionMismatch is returned when the source and target units
	// belong to different dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidPrecision is returned when the requested precision is
	// negative or exceeds the configured maximum.
	ErrInvalidPrecision = errors.New("precision out of range")

	// ErrInvalidMode is returned when the rounding mode name is unknown.
	ErrInvalidMode = errors.New("unknown rounding mode")

	// ErrNonFiniteValue is returned when the input value is NaN or ±Inf.
	ErrNonFiniteValue = errors.New("non-finite value")
)

// Dimension names used in DTOs and log fields.
const (
	DimensionTemperature = "temperature"
	DimensionLength      = "length"
)

// temperatureEntry and lengthEntry pair a catalog unit with its DTO
// description. Two table types because the unit types differ per
// dimension; that is exactly what keeps the dimensions apart.
type temperatureEntry struct {
	unit measure.Unit[measure.TemperatureDimension]
	info dto.UnitInfo
}

type lengthEntry struct {
	unit measure.Unit[measure.LengthDimension]
	info dto.UnitInfo
}

// temperatureTable and lengthTable map accepted unit names to catalog
// entries. The tables are closed: they enumerate the six units of the
// fixed catalogs and are not extensible at runtime.
var temperatureTable = func() map[string]temperatureEntry {
	entries := []struct {
		names []string
		unit  measure.Unit[measure.TemperatureDimension]
		base  bool
	}{
		{[]string{"kelvin", "k"}, measure.Kelvin, true},
		{[]string{"celsius", "c", "°c"}, measure.Celsius, false},
		{[]string{"fahrenheit", "f", "°f"}, measure.Fahrenheit, false},
	}

	table := make(map[string]temperatureEntry)
	for _, e := range entries {
		info := dto.UnitInfo{
			Name:      e.names[0],
			Symbol:    e.unit.Symbol(),
			Dimension: DimensionTemperature,
			Base:      e.base,
		}
		for _, name := range e.names {
			table[name] = temperatureEntry{unit: e.unit, info: info}
		}
	}
	return table
}()

var lengthTable = func() map[string]lengthEntry {
	entries := []struct {
		names []string
		unit  measure.Unit[measure.LengthDimension]
		base  bool
	}{
		{[]string{"meter", "m"}, measure.Meter, true},
		{[]string{"kilometer", "km"}, measure.Kilometer, false},
		{[]string{"foot", "ft"}, measure.Foot, false},
	}

	table := make(map[string]lengthEntry)
	for _, e := range entries {
		info := dto.UnitInfo{
			Name:      e.names[0],
			Symbol:    e.unit.Symbol(),
			Dimension: DimensionLength,
			Base:      e.base,
		}
		for _, name := range e.names {
			table[name] = lengthEntry{unit: e.unit, info: info}
		}
	}
	return table
}()

// ConverterService performs name-based unit conversions on top of the
// type-safe domain core and formats results for display.
type ConverterService struct {
	log              port.Logger
	defaultPrecision int
	maxPrecision     int
}

// ConverterOption configures a ConverterService (Functional Option Pattern).
type ConverterOption func(*ConverterService)

// WithDefaultPrecision sets the precision applied when a request does not
// specify one.
func WithDefaultPrecision(precision int) ConverterOption {
	return func(s *ConverterService) {
		if precision >= 0 {
			s.defaultPrecision = precision
		}
	}
}

// WithMaxPrecision sets the upper bound on requested precision.
func WithMaxPrecision(precision int) ConverterOption {
	return func(s *ConverterService) {
		if precision > 0 {
			s.maxPrecision = precision
		}
	}
}

// NewConverterService creates a ConverterService.
//
// Parameters:
//   - log: structured logger
//   - opts: optional configuration
//
// Returns:
//   - *ConverterService: the configured service
func NewConverterService(log port.Logger, opts ...ConverterOption) *ConverterService {
	s := &ConverterService{
		log:              log,
		defaultPrecision: 2,
		maxPrecision:     12,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert converts a value between two named units of the same dimension
// and renders the result at the requested precision.
//
// Parameters:
//   - ctx: context for request-scoped logging
//   - req: the conversion request
//
// Returns:
//   - dto.ConversionResult: the converted and formatted value
//   - error: ErrUnknownUnit, ErrDimensionMismatch, ErrInvalidPrecision,
//     ErrInvalidMode, or ErrNonFiniteValue
func (s *ConverterService) Convert(ctx context.Context, req dto.ConversionRequest) (dto.ConversionResult, error) {
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return dto.ConversionResult{}, ErrNonFiniteValue
	}

	precision := s.defaultPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}
	if precision < 0 || precision > s.maxPrecision {
		return dto.ConversionResult{}, fmt.Errorf("%w: %d (max %d)", ErrInvalidPrecision, precision, s.maxPrecision)
	}

	mode, ok := numfmt.ParseMode(req.Mode)
	if !ok {
		return dto.ConversionResult{}, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	fromName := normalizeUnitName(req.From)
	toName := normalizeUnitName(req.To)

	fromTemp, fromIsTemp := temperatureTable[fromName]
	toTemp, toIsTemp := temperatureTable[toName]
	fromLen, fromIsLen := lengthTable[fromName]
	toLen, toIsLen := lengthTable[toName]

	var (
		value     float64
		dimension string
		fromInfo  dto.UnitInfo
		toInfo    dto.UnitInfo
	)

	switch {
	case fromIsTemp && toIsTemp:
		value = measure.Convert(req.Value, fromTemp.unit, toTemp.unit)
		dimension = DimensionTemperature
		fromInfo, toInfo = fromTemp.info, toTemp.info

	case fromIsLen && toIsLen:
		value = measure.Convert(req.Value, fromLen.unit, toLen.unit)
		dimension = DimensionLength
		fromInfo, toInfo = fromLen.info, toLen.info

	case (fromIsTemp && toIsLen) || (fromIsLen && toIsTemp):
		return dto.ConversionResult{}, fmt.Errorf("%w: cannot convert %q to %q", ErrDimensionMismatch, req.From, req.To)

	case !fromIsTemp && !fromIsLen:
		return dto.ConversionResult{}, fmt.Errorf("%w: %q", ErrUnknownUnit, req.From)

	default:
		return dto.ConversionResult{}, fmt.Errorf("%w: %q", ErrUnknownUnit, req.To)
	}

	formatted, err := numfmt.Format(value, precision, mode)
	if err != nil {
		// Converted output can only be non-finite if the input overflowed.
		return dto.ConversionResult{}, fmt.Errorf("format result: %w", err)
	}

	s.log.WithContext(ctx).Debug("Conversion performed",
		"dimension", dimension,
		"from", fromInfo.Name,
		"to", toInfo.Name,
		"value", req.Value,
		"result", value,
	)

	return dto.ConversionResult{
		Value:     value,
		Formatted: formatted,
		Display:   formatted + " " + toInfo.Symbol,
		Dimension: dimension,
		From:      fromInfo,
		To:        toInfo,
	}, nil
}

// Units returns the full unit catalog in a stable order.
//
// Parameters:
//   - ctx: context for request-scoped logging
//
// Returns:
//   - []dto.UnitInfo: the six catalog units
func (s *ConverterService) Units(ctx context.Context) []dto.UnitInfo {
	// Canonical names only, catalog order.
	names := []string{"kelvin", "celsius", "fahrenheit", "meter", "kilometer", "foot"}

	units := make([]dto.UnitInfo, 0, len(names))
	for _, name := range names {
		if e, ok := temperatureTable[name]; ok {
			units = append(units, e.info)
			continue
		}
		if e, ok := lengthTable[name]; ok {
			units = append(units, e.info)
		}
	}
	return units
}

// normalizeUnitName lowercases and trims a unit name for table lookup.
func normalizeUnitName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
