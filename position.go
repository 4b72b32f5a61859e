package sunglide

import (
	"time"

	"github.com/thurmanmarka/sunglide/internal/sun"
)

// ZenithAndAzimuth returns the Sun's zenith angle and azimuth, in degrees,
// seen by obs at instant t. The azimuth is measured clockwise from north.
func ZenithAndAzimuth(obs Observer, t time.Time, withRefraction bool) (zenith, azimuth float64) {
	p := sun.PositionAt(obs.Latitude, obs.Longitude, t, withRefraction)
	return p.Zenith, p.Azimuth
}

// Zenith returns the Sun's zenith angle in degrees.
func Zenith(obs Observer, t time.Time, withRefraction bool) float64 {
	z, _ := ZenithAndAzimuth(obs, t, withRefraction)
	return z
}

// Azimuth returns the Sun's azimuth in degrees clockwise from north.
func Azimuth(obs Observer, t time.Time) float64 {
	_, az := ZenithAndAzimuth(obs, t, true)
	return az
}

// ElevationAngle returns the Sun's angle above the horizon in degrees.
func ElevationAngle(obs Observer, t time.Time, withRefraction bool) float64 {
	return 90.0 - Zenith(obs, t, withRefraction)
}
