package solar

import (
	"math"
	"time"

	"github.com/angas/solarpanel-go/convert"
)

const (
	solarConstant    = 1366.1   // W/m²
	standardPressure = 101325.0 // Pa
)

// Irradiance components in W/m².
type Irradiance struct {
	DNI float64 // Direct normal
	GHI float64 // Global horizontal
	DHI float64 // Diffuse horizontal
}

// ExtraterrestrialIrradiance is the direct normal irradiance at the top of the
// atmosphere on the given day (Spencer 1971).
func ExtraterrestrialIrradiance(t time.Time) float64 {
	b := 2 * math.Pi * float64(t.UTC().YearDay()-1) / 365
	rr := 1.00011 + 0.034221*math.Cos(b) + 0.00128*math.Sin(b) +
		0.000719*math.Cos(2*b) + 0.000077*math.Sin(2*b)
	return solarConstant * rr
}

// RelativeAirmass uses the Kasten-Young (1989) formula on the apparent zenith in
// degrees. It is NaN when the sun is below the horizon.
func RelativeAirmass(apparentZenith float64) float64 {
	if apparentZenith >= 90 {
		return math.NaN()
	}
	return 1 / (math.Cos(convert.DegToRad(apparentZenith)) + 0.50572*math.Pow(96.07995-apparentZenith, -1.6364))
}

// AbsoluteAirmass corrects a relative airmass for site pressure in Pa.
func AbsoluteAirmass(relative, pressure float64) float64 {
	return relative * pressure / standardPressure
}

// ClearSky computes clear-sky irradiance with the Ineichen-Perez model
// (Ineichen and Perez 2002) for the given sun position and Linke turbidity.
func ClearSky(t time.Time, pos Position, loc *Location, linkeTurbidity float64) Irradiance {
	if !pos.IsUp() {
		return Irradiance{}
	}

	cosZenith := math.Max(math.Cos(convert.DegToRad(pos.ApparentZenith)), 0)
	am := AbsoluteAirmass(RelativeAirmass(pos.ApparentZenith), loc.Pressure())
	dniExtra := ExtraterrestrialIrradiance(t)
	tl := linkeTurbidity
	alt := loc.Altitude

	fh1 := math.Exp(-alt / 8000)
	fh2 := math.Exp(-alt / 1250)
	cg1 := 5.09e-05*alt + 0.868
	cg2 := 3.92e-05*alt + 0.0387

	ghi := math.Exp(-cg2 * am * (fh1 + fh2*(tl-1)))
	ghi = cg1 * dniExtra * cosZenith * math.Max(ghi, 0)

	b := 0.664 + 0.163/fh1
	bnci := dniExtra * math.Max(b*math.Exp(-0.09*am*(tl-1)), 0)

	var bnci2 float64
	if cosZenith > 0 {
		bnci2 = (1 - (0.1-0.2*math.Exp(-tl))/(0.1+0.882/fh1)) / cosZenith
		bnci2 = ghi * math.Min(math.Max(bnci2, 0), 1e20)
	}

	dni := math.Min(bnci, bnci2)
	return Irradiance{
		DNI: dni,
		GHI: ghi,
		DHI: ghi - dni*cosZenith,
	}
}
