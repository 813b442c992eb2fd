package sapm

import "math"

// Irradiance at which DeltaT is specified, W/m²
const referenceIrradiance = 1000.0

// ModuleTemperature is the back-of-module temperature in °C.
func ModuleTemperature(poaGlobal, tempAir, windSpeed float64, m Module) float64 {
	return poaGlobal*math.Exp(m.A+m.B*windSpeed) + tempAir
}

// CellTemperature estimates the cell temperature in °C from plane of array
// irradiance (W/m²), air temperature (°C) and wind speed (m/s at 10 m).
func CellTemperature(poaGlobal, tempAir, windSpeed float64, m Module) float64 {
	return ModuleTemperature(poaGlobal, tempAir, windSpeed, m) + poaGlobal/referenceIrradiance*m.DeltaT
}

// CellTemperatures applies CellTemperature to every irradiance value with a
// constant air temperature and wind speed.
func CellTemperatures(poaGlobal []float64, tempAir, windSpeed float64, m Module) []float64 {
	temps := make([]float64, len(poaGlobal))
	for i, e := range poaGlobal {
		temps[i] = CellTemperature(e, tempAir, windSpeed, m)
	}
	return temps
}
