package solver

import (
	"time"

	"github.com/thurmanmarka/sunglide/internal/sun"
	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// Site is an observer reduced to what the transit solver needs.
// ElevationAdjustment is the extra depression, in degrees, seen from the
// observer's height or imposed by an obscuring feature.
type Site struct {
	Latitude            float64
	Longitude           float64
	ElevationAdjustment float64
}

// TimeOfTransit returns the UTC instant on the given calendar date at which
// the Sun's zenith angle equals zenith while moving in direction dir.
//
// The first pass evaluates the ephemeris at midnight of the date; the
// second re-evaluates it at the first estimate. Refraction is subtracted
// from the target zenith on the first pass and added on the second.
func TimeOfTransit(site Site, year int, month time.Month, day int, zenith float64, dir Direction) (time.Time, error) {
	lat := sun.ClampLatitude(site.Latitude)
	adjusted := zenith + site.ElevationAdjustment
	refraction := sun.RefractionAtZenith(adjusted)

	T := timeutil.JulianCentury(timeutil.JulianDay(year, month, day))
	minutes, err := transitMinutes(lat, site.Longitude, T, adjusted-refraction, dir)
	if err != nil {
		return time.Time{}, err
	}

	T = timeutil.JulianCentury(timeutil.JulianDayFromCentury(T) + minutes/1440.0)
	minutes, err = transitMinutes(lat, site.Longitude, T, adjusted+refraction, dir)
	if err != nil {
		return time.Time{}, err
	}

	return timeutil.AddMinutes(timeutil.MidnightUTC(year, month, day), minutes), nil
}

// transitMinutes returns minutes after UTC midnight for one solver pass.
func transitMinutes(lat, lon, T, zenith float64, dir Direction) (float64, error) {
	ha, err := HourAngle(lat, sun.Declination(T), zenith, dir)
	if err != nil {
		return 0, err
	}

	delta := -lon - timeutil.Rad2Deg(ha)
	return 720.0 + delta*4.0 - sun.EquationOfTime(T), nil
}
