// Package pv converts irradiance and cell temperature to electrical power for a
// reference solar module.
package pv

import (
	"github.com/angas/solarpanel-go/config"
	"github.com/angas/solarpanel-go/slice"
)

type Calculator struct {
	module config.AppConfigReferenceModule
}

func New(module config.AppConfigReferenceModule) *Calculator {
	return &Calculator{module: module}
}

func (c *Calculator) Module() config.AppConfigReferenceModule {
	return c.module
}

// EffectiveEfficiency derates the module efficiency linearly with the deviation
// from the reference temperature. The result is not clamped, very hot cells give
// a negative efficiency.
func (c *Calculator) EffectiveEfficiency(temperature float64) float64 {
	deltaTemp := temperature - c.module.ReferenceTemperature
	return c.module.Efficiency * (1 + c.module.TemperatureCoefficient*deltaTemp)
}

// PowerOutput is the power in W of a single panel for an irradiance in W/m²
// and a cell temperature in °C.
func (c *Calculator) PowerOutput(irradiance, temperature float64) float64 {
	return irradiance * c.module.SinglePanelArea * c.EffectiveEfficiency(temperature)
}

// PowerOutputSeries applies PowerOutput pairwise. If the slices differ in length
// the result stops at the shorter one, trailing values are dropped without error.
func (c *Calculator) PowerOutputSeries(irradiance, temperature []float64) []float64 {
	return slice.ZipWith(irradiance, temperature, c.PowerOutput)
}
