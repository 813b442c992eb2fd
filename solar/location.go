// Package solar models the sun as seen from a site: its position, the clear-sky
// irradiance it delivers and the share of it that reaches a tilted surface.
package solar

import (
	"errors"
	"fmt"
	"math"
	"time"
	_ "time/tzdata"
)

var ErrInvalidLocation = errors.New("invalid location")

type Location struct {
	Latitude  float64 // Degrees, north positive
	Longitude float64 // Degrees, east positive
	Altitude  float64 // Meters above sea level
	tz        *time.Location
}

func NewLocation(latitude, longitude, altitude float64, timezone string) (*Location, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: latitude %f out of range", ErrInvalidLocation, latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: longitude %f out of range", ErrInvalidLocation, longitude)
	}
	if math.IsNaN(altitude) {
		return nil, fmt.Errorf("%w: altitude is not a number", ErrInvalidLocation)
	}
	tz, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load timezone %s: %v", ErrInvalidLocation, timezone, err)
	}
	return &Location{
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  altitude,
		tz:        tz,
	}, nil
}

func (l *Location) Timezone() *time.Location {
	return l.tz
}

// Pressure is the standard atmosphere pressure at the site altitude in Pa.
func (l *Location) Pressure() float64 {
	return 100 * math.Pow((44331.514-l.Altitude)/11880.516, 1/0.1902632)
}

func (l *Location) String() string {
	return fmt.Sprintf("%.4f,%.4f (%.0f m, %s)", l.Latitude, l.Longitude, l.Altitude, l.tz)
}
