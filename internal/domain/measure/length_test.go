package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKilometerToMeter(t *testing.T) {
	tests := []struct {
		kilometers float64
		meters     float64
	}{
		{1.0, 1000.0},
		{2.5, 2500.0},
		{0.001, 1.0},
	}

	for _, tt := range tests {
		length := FromUnit(Kilometer, tt.kilometers)
		assert.InDelta(t, tt.meters, length.ToUnit(Meter), 1e-12, "%v km", tt.kilometers)
	}
}

func TestMeterToKilometer(t *testing.T) {
	length := FromUnit(Meter, 1000.0)
	assert.InDelta(t, 1.0, length.ToUnit(Kilometer), 1e-12)

	length = FromUnit(Meter, 0.5)
	assert.InDelta(t, 0.0005, length.ToUnit(Kilometer), 1e-12)
}

func TestMeterToFoot(t *testing.T) {
	length := FromUnit(Meter, 1.0)
	assert.InDelta(t, 3.280839895, length.ToUnit(Foot), 1e-9)

	length = FromUnit(Meter, 0.3048)
	assert.InDelta(t, 1.0, length.ToUnit(Foot), 1e-12)
}

func TestFootToMeter(t *testing.T) {
	// The international foot is exactly 0.3048 m.
	length := FromUnit(Foot, 1.0)
	assert.Equal(t, 0.3048, length.ToUnit(Meter))

	length = FromUnit(Foot, 10.0)
	assert.InDelta(t, 3.048, length.ToUnit(Meter), 1e-12)
}

func TestKilometerToFoot(t *testing.T) {
	length := FromUnit(Kilometer, 1.0)
	assert.InDelta(t, 3280.839895, length.ToUnit(Foot), 1e-6)

	length = FromUnit(Kilometer, 0.0003048)
	assert.InDelta(t, 1.0, length.ToUnit(Foot), 1e-9)
}

func TestLengthSymbols(t *testing.T) {
	assert.Equal(t, "m", Meter.Symbol())
	assert.Equal(t, "km", Kilometer.Symbol())
	assert.Equal(t, "ft", Foot.Symbol())
}
