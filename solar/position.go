package solar

import (
	"math"
	"time"

	"github.com/angas/solarpanel-go/convert"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	meeussolar "github.com/soniakeys/meeus/v3/solar"
)

// Difference between terrestrial and universal time, close enough for the
// current decade.
const deltaTSeconds = 69.0

// Air temperature assumed by the refraction correction, °C
const refractionTemperature = 12.0

// Position of the sun, all angles in degrees.
type Position struct {
	Zenith         float64 // Geometric
	ApparentZenith float64 // Corrected for atmospheric refraction
	Elevation      float64 // Apparent, 90 - ApparentZenith
	Azimuth        float64 // Clockwise from north
}

// IsUp reports whether the apparent sun is above the horizon.
func (p Position) IsUp() bool {
	return p.ApparentZenith < 90
}

func SunPosition(t time.Time, loc *Location) Position {
	jd := julian.TimeToJD(t.UTC())
	jde := jd + deltaTSeconds/86400

	ra, dec := meeussolar.ApparentEquatorial(jde)
	st := sidereal.Apparent(jd)

	lat := convert.DegToRad(loc.Latitude)
	hourAngle := st.Rad() + convert.DegToRad(loc.Longitude) - ra.Rad()

	sinLat, cosLat := math.Sincos(lat)
	sinDec, cosDec := math.Sincos(dec.Rad())
	sinH, cosH := math.Sincos(hourAngle)

	sinElevation := sinLat*sinDec + cosLat*cosDec*cosH
	elevation := convert.RadToDeg(math.Asin(math.Max(-1, math.Min(1, sinElevation))))

	// Meeus measures azimuth westward from south
	azimuthFromSouth := math.Atan2(sinH, cosH*sinLat-math.Tan(dec.Rad())*cosLat)
	azimuth := math.Mod(convert.RadToDeg(azimuthFromSouth)+180, 360)
	if azimuth < 0 {
		azimuth += 360
	}

	apparentElevation := elevation + refraction(elevation, loc.Pressure()/100, refractionTemperature)

	return Position{
		Zenith:         90 - elevation,
		ApparentZenith: 90 - apparentElevation,
		Elevation:      apparentElevation,
		Azimuth:        azimuth,
	}
}

// refraction returns the elevation correction in degrees for a true elevation in
// degrees, pressure in hPa and temperature in °C. No correction is applied once
// the sun is well below the horizon.
func refraction(elevation, pressure, temperature float64) float64 {
	if elevation < -(0.26667 + 0.5667) {
		return 0
	}
	arg := convert.DegToRad(elevation + 10.3/(elevation+5.11))
	return pressure / 1010 * 283 / (273 + temperature) * 1.02 / (60 * math.Tan(arg))
}
