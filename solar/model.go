package solar

import "time"

// Model bundles a site with the atmosphere and ground parameters the clear-sky
// and transposition calculations need.
type Model struct {
	loc            *Location
	linkeTurbidity float64
	albedo         float64
}

func NewModel(loc *Location, linkeTurbidity, albedo float64) *Model {
	return &Model{loc: loc, linkeTurbidity: linkeTurbidity, albedo: albedo}
}

func (m *Model) Location() *Location {
	return m.loc
}

func (m *Model) Timezone() *time.Location {
	return m.loc.Timezone()
}

func (m *Model) Position(t time.Time) Position {
	return SunPosition(t, m.loc)
}

func (m *Model) ClearSky(t time.Time, pos Position) Irradiance {
	return ClearSky(t, pos, m.loc, m.linkeTurbidity)
}

func (m *Model) PlaneOfArray(surfaceTilt, surfaceAzimuth float64, pos Position, irr Irradiance) POA {
	return PlaneOfArray(surfaceTilt, surfaceAzimuth, pos, irr, m.albedo)
}
