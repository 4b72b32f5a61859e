package solver

import (
	"time"

	"github.com/thurmanmarka/sunglide/internal/sun"
	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

const (
	searchStep      = 5 * time.Minute
	searchTolerance = time.Second
)

// SearchTransit returns the UTC instant on the given date at which the
// Sun's computed zenith angle reaches zenith while moving in direction dir.
// It walks the twelve hours before solar noon (Rising) or after it
// (Setting) and bisects the first bracket. With refraction set the
// apparent zenith is searched. Apart from the ephemeris it is independent
// of TimeOfTransit.
func SearchTransit(site Site, year int, month time.Month, day int, zenith float64, dir Direction, refraction bool) (time.Time, error) {
	lat := sun.ClampLatitude(site.Latitude)
	target := zenith + site.ElevationAdjustment

	// g turns from negative to non-negative at the crossing, whichever
	// way the Sun is moving.
	g := func(t time.Time) float64 {
		return float64(dir) * (target - sun.PositionAt(lat, site.Longitude, t, refraction).Zenith)
	}

	noon := Noon(site.Longitude, year, month, day)
	start := noon
	if dir == Rising {
		start = noon.Add(-12 * time.Hour)
	}
	end := start.Add(12 * time.Hour)

	for a, ga := start, g(start); a.Before(end); {
		b := a.Add(searchStep)
		gb := g(b)
		if ga < 0 && gb >= 0 {
			return bisect(g, a, b), nil
		}
		a, ga = b, gb
	}

	T := timeutil.JulianCentury(timeutil.JulianDay(year, month, day))
	return time.Time{}, &MathError{Latitude: lat, Declination: sun.Declination(T), Zenith: target}
}

// bisect narrows [a, b], over which g becomes non-negative, to
// searchTolerance and returns its midpoint.
func bisect(g func(time.Time) float64, a, b time.Time) time.Time {
	for b.Sub(a) > searchTolerance {
		mid := a.Add(b.Sub(a) / 2)
		if g(mid) < 0 {
			a = mid
		} else {
			b = mid
		}
	}
	return a.Add(b.Sub(a) / 2)
}
