package convert

import (
	"math"
	"time"
)

func TwoDecimals(number float64) float64 {
	return RoundFloat64(number, 2)
}

func RoundFloat64(number float64, decimals int) float64 {
	return math.Round(number*math.Pow10(decimals)) / math.Pow10(decimals)
}

// WattHoursToKWh converts an energy amount in Wh to kWh.
func WattHoursToKWh(wh float64) float64 {
	return wh * 1e-3
}

// StepHours is the length of a sampling step expressed in hours.
func StepHours(step time.Duration) float64 {
	return step.Hours()
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
