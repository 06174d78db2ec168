package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/port"
)

// nopLogger satisfies port.Logger for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})           {}
func (nopLogger) Info(string, ...interface{})            {}
func (nopLogger) Warn(string, ...interface{})            {}
func (nopLogger) Error(string, ...interface{})           {}
func (l nopLogger) With(...interface{}) port.Logger      { return l }
func (l nopLogger) WithContext(context.Context) port.Logger { return l }

func newTestService(opts ...ConverterOption) *ConverterService {
	return NewConverterService(nopLogger{}, opts...)
}

func TestConvertTemperature(t *testing.T) {
	svc := newTestService()

	res, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 100.0,
		From:  "celsius",
		To:    "fahrenheit",
	})
	require.NoError(t, err)

	assert.InDelta(t, 212.0, res.Value, 1e-9)
	assert.Equal(t, "212", res.Formatted)
	assert.Equal(t, "212 °F", res.Display)
	assert.Equal(t, DimensionTemperature, res.Dimension)
	assert.Equal(t, "celsius", res.From.Name)
	assert.Equal(t, "fahrenheit", res.To.Name)
}

func TestConvertLength(t *testing.T) {
	svc := newTestService()

	res, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 1.0,
		From:  "km",
		To:    "m",
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, res.Value, 1e-9)
	assert.Equal(t, "1000 m", res.Display)
	assert.Equal(t, DimensionLength, res.Dimension)
	assert.Equal(t, "kilometer", res.From.Name)
	assert.True(t, res.To.Base)
}

func TestConvertAppliesPrecisionAndMode(t *testing.T) {
	svc := newTestService()
	precision := 2

	res, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value:     1.0,
		From:      "meter",
		To:        "foot",
		Precision: &precision,
		Mode:      "trunc",
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.280839895, res.Value, 1e-9)
	assert.Equal(t, "3.28", res.Formatted)
}

func TestConvertDefaultPrecision(t *testing.T) {
	svc := newTestService(WithDefaultPrecision(3))

	res, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 85.6,
		From:  "fahrenheit",
		To:    "celsius",
	})
	require.NoError(t, err)

	// (85.6 - 32) * 5/9 = 29.777...
	assert.Equal(t, "29.778", res.Formatted)
}

func TestConvertUnknownUnit(t *testing.T) {
	svc := newTestService()

	_, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 1.0,
		From:  "furlong",
		To:    "meter",
	})
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 1.0,
		From:  "meter",
		To:    "furlong",
	})
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestConvertDimensionMismatch(t *testing.T) {
	svc := newTestService()

	_, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 25.0,
		From:  "celsius",
		To:    "meter",
	})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 25.0,
		From:  "km",
		To:    "kelvin",
	})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestConvertNonFiniteValue(t *testing.T) {
	svc := newTestService()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.Convert(context.Background(), dto.ConversionRequest{
			Value: v,
			From:  "celsius",
			To:    "kelvin",
		})
		assert.ErrorIs(t, err, ErrNonFiniteValue)
	}
}

func TestConvertInvalidPrecision(t *testing.T) {
	svc := newTestService(WithMaxPrecision(6))

	precision := 7
	_, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value:     1.0,
		From:      "m",
		To:        "ft",
		Precision: &precision,
	})
	assert.ErrorIs(t, err, ErrInvalidPrecision)

	precision = -1
	_, err = svc.Convert(context.Background(), dto.ConversionRequest{
		Value:     1.0,
		From:      "m",
		To:        "ft",
		Precision: &precision,
	})
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestConvertInvalidMode(t *testing.T) {
	svc := newTestService()

	_, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 1.0,
		From:  "m",
		To:    "ft",
		Mode:  "ceiling",
	})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestConvertNormalizesUnitNames(t *testing.T) {
	svc := newTestService()

	res, err := svc.Convert(context.Background(), dto.ConversionRequest{
		Value: 0.0,
		From:  " Celsius ",
		To:    "K",
	})
	require.NoError(t, err)
	assert.InDelta(t, 273.15, res.Value, 1e-12)
}

func TestUnitsCatalog(t *testing.T) {
	svc := newTestService()

	units := svc.Units(context.Background())
	require.Len(t, units, 6)

	assert.Equal(t, "kelvin", units[0].Name)
	assert.True(t, units[0].Base)
	assert.Equal(t, "meter", units[3].Name)
	assert.True(t, units[3].Base)

	symbols := make([]string, 0, len(units))
	for _, u := range units {
		symbols = append(symbols, u.Symbol)
	}
	assert.Equal(t, []string{"K", "°C", "°F", "m", "km", "ft"}, symbols)
}
