package sapm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var openRackGlassGlass = Module{Module: "Glass/cell/glass", Mounting: "Open rack", A: -3.47, B: -0.0594, DeltaT: 3}

func TestCellTemperatureNoIrradiance(t *testing.T) {
	// Without sun the cell is at air temperature
	assert.Equal(t, 25.0, CellTemperature(0, 25, 1, openRackGlassGlass))
}

func TestCellTemperature(t *testing.T) {
	e := 800.0
	expectedModule := e*math.Exp(-3.47-0.0594*1) + 25
	expectedCell := expectedModule + e/1000*3

	assert.InDelta(t, expectedModule, ModuleTemperature(e, 25, 1, openRackGlassGlass), 1e-9)
	assert.InDelta(t, expectedCell, CellTemperature(e, 25, 1, openRackGlassGlass), 1e-9)
	assert.InDelta(t, 50.86, CellTemperature(e, 25, 1, openRackGlassGlass), 0.01)
}

func TestCellTemperatureDropsWithWind(t *testing.T) {
	calm := CellTemperature(1000, 20, 0, openRackGlassGlass)
	windy := CellTemperature(1000, 20, 10, openRackGlassGlass)
	assert.Less(t, windy, calm)
}

func TestCellTemperatures(t *testing.T) {
	poa := []float64{0, 400, 800}
	temps := CellTemperatures(poa, 25, 1, openRackGlassGlass)

	assert.Len(t, temps, len(poa))
	for i, e := range poa {
		assert.Equal(t, CellTemperature(e, 25, 1, openRackGlassGlass), temps[i])
	}
}
