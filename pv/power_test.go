package pv

import (
	"testing"

	"github.com/angas/solarpanel-go/config"
	"github.com/stretchr/testify/assert"
)

var reference = config.AppConfigReferenceModule{
	Efficiency:             0.2,
	TemperatureCoefficient: -0.004,
	ReferenceTemperature:   25,
	SinglePanelArea:        1.6,
}

func TestPowerOutputAtReferenceTemperature(t *testing.T) {
	c := New(reference)

	for _, irr := range []float64{0, 1, 250, 800, 1000, 1361} {
		assert.InDelta(t, irr*1.6*0.2, c.PowerOutput(irr, 25), 1e-9, "irradiance %f", irr)
	}
	assert.InDelta(t, 256.0, c.PowerOutput(800, 25), 1e-9)
}

func TestPowerOutputDerated(t *testing.T) {
	c := New(reference)

	assert.InDelta(t, 0.184, c.EffectiveEfficiency(45), 1e-12)
	assert.InDelta(t, 235.52, c.PowerOutput(800, 45), 1e-9)
}

func TestPowerOutputEnhancedBelowReference(t *testing.T) {
	c := New(reference)

	// 0.2 * (1 + 0.004 * 25)
	assert.InDelta(t, 0.22, c.EffectiveEfficiency(0), 1e-12)
	assert.Greater(t, c.PowerOutput(800, 0), c.PowerOutput(800, 25))
}

func TestEfficiencyIsNotClamped(t *testing.T) {
	c := New(reference)

	// The linear model crosses zero at 275 °C
	assert.InDelta(t, 0.0, c.EffectiveEfficiency(275), 1e-12)
	assert.Less(t, c.EffectiveEfficiency(300), 0.0)
	assert.Less(t, c.PowerOutput(800, 300), 0.0)
}

func TestPowerOutputSeriesIsElementWise(t *testing.T) {
	c := New(reference)

	irr := []float64{800, 800, 0, 420.5}
	temp := []float64{25, 45, 10, 61.3}

	got := c.PowerOutputSeries(irr, temp)
	assert.Len(t, got, len(irr))
	for i := range irr {
		assert.Equal(t, c.PowerOutput(irr[i], temp[i]), got[i])
	}
	assert.InDelta(t, 256.0, got[0], 1e-9)
	assert.InDelta(t, 235.52, got[1], 1e-9)
}

func TestPowerOutputSeriesStopsAtShorter(t *testing.T) {
	c := New(reference)

	got := c.PowerOutputSeries([]float64{800, 800, 800}, []float64{25})
	assert.Equal(t, []float64{c.PowerOutput(800, 25)}, got)

	got = c.PowerOutputSeries([]float64{800}, []float64{25, 45})
	assert.Len(t, got, 1)

	assert.Empty(t, c.PowerOutputSeries(nil, []float64{25}))
}

func TestPowerOutputSeriesZeroIrradiance(t *testing.T) {
	c := New(reference)

	for _, p := range c.PowerOutputSeries(make([]float64, 24), make([]float64, 24)) {
		assert.Equal(t, 0.0, p)
	}
}
