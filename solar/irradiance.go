package solar

import (
	"math"

	"github.com/angas/solarpanel-go/convert"
)

// POA is the irradiance on the plane of array in W/m².
type POA struct {
	Global        float64
	Direct        float64
	SkyDiffuse    float64
	GroundDiffuse float64
}

// AngleOfIncidence returns the cosine of the angle between the sun and the
// normal of a surface with the given tilt and azimuth in degrees.
func AngleOfIncidence(surfaceTilt, surfaceAzimuth float64, pos Position) float64 {
	tilt := convert.DegToRad(surfaceTilt)
	zenith := convert.DegToRad(pos.ApparentZenith)
	return math.Cos(tilt)*math.Cos(zenith) +
		math.Sin(tilt)*math.Sin(zenith)*math.Cos(convert.DegToRad(pos.Azimuth-surfaceAzimuth))
}

// PlaneOfArray transposes irradiance onto a tilted surface with an isotropic sky.
// Tilt is degrees from horizontal, azimuth degrees clockwise from north.
func PlaneOfArray(surfaceTilt, surfaceAzimuth float64, pos Position, irr Irradiance, albedo float64) POA {
	cosTilt := math.Cos(convert.DegToRad(surfaceTilt))

	direct := math.Max(irr.DNI*AngleOfIncidence(surfaceTilt, surfaceAzimuth, pos), 0)
	sky := irr.DHI * (1 + cosTilt) / 2
	ground := irr.GHI * albedo * (1 - cosTilt) / 2

	return POA{
		Global:        direct + sky + ground,
		Direct:        direct,
		SkyDiffuse:    sky,
		GroundDiffuse: ground,
	}
}
