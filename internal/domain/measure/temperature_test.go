package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{0.0, 32.0},
		{100.0, 212.0},
		{-40.0, -40.0},
	}

	for _, tt := range tests {
		temp := FromUnit(Celsius, tt.celsius)
		assert.InDelta(t, tt.fahrenheit, temp.ToUnit(Fahrenheit), 1e-12, "%v °C", tt.celsius)
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		fahrenheit float64
		celsius    float64
	}{
		{32.0, 0.0},
		{212.0, 100.0},
		{-40.0, -40.0},
	}

	for _, tt := range tests {
		temp := FromUnit(Fahrenheit, tt.fahrenheit)
		assert.InDelta(t, tt.celsius, temp.ToUnit(Celsius), 1e-12, "%v °F", tt.fahrenheit)
	}
}

func TestCelsiusToKelvin(t *testing.T) {
	tests := []struct {
		celsius float64
		kelvin  float64
	}{
		{0.0, 273.15},
		{100.0, 373.15},
		{-273.15, 0.0},
	}

	for _, tt := range tests {
		temp := FromUnit(Celsius, tt.celsius)
		assert.InDelta(t, tt.kelvin, temp.ToUnit(Kelvin), 1e-12, "%v °C", tt.celsius)
	}
}

func TestFahrenheitToKelvin(t *testing.T) {
	temp := FromUnit(Fahrenheit, 32.0)
	assert.InDelta(t, 273.15, temp.ToUnit(Kelvin), 1e-12)

	temp = FromUnit(Fahrenheit, 212.0)
	assert.InDelta(t, 373.15, temp.ToUnit(Kelvin), 1e-12)

	// Absolute zero on the Fahrenheit scale.
	temp = FromUnit(Fahrenheit, -459.67)
	assert.InDelta(t, 0.0, temp.ToUnit(Kelvin), 1e-8)
}

func TestKelvinToFahrenheit(t *testing.T) {
	temp := FromUnit(Kelvin, 273.15)
	assert.InDelta(t, 32.0, temp.ToUnit(Fahrenheit), 1e-12)

	temp = FromUnit(Kelvin, 0.0)
	assert.InDelta(t, -459.67, temp.ToUnit(Fahrenheit), 1e-8)
}

func TestTemperatureSymbols(t *testing.T) {
	assert.Equal(t, "K", Kelvin.Symbol())
	assert.Equal(t, "°C", Celsius.Symbol())
	assert.Equal(t, "°F", Fahrenheit.Symbol())
}
