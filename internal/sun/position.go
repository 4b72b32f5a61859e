package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// Position is the Sun's apparent place in the observer's sky.
type Position struct {
	Zenith  float64 // degrees from the vertical
	Azimuth float64 // degrees clockwise from north, [0, 360)
}

// Elevation is the complement of the zenith angle.
func (p Position) Elevation() float64 {
	return 90.0 - p.Zenith
}

// azimuthGuard is the smallest |cos(lat)·sin(zenith)| for which the
// azimuth relation is evaluated.
const azimuthGuard = 0.001

// PositionAt computes the Sun's zenith and azimuth for an observer at
// (lat, lon) at instant t. The civil time and UTC offset are read from t's
// location. When withRefraction is set the zenith is reduced by the
// refraction at that zenith.
func PositionAt(lat, lon float64, t time.Time, withRefraction bool) Position {
	lat = ClampLatitude(lat)

	utc := t.UTC()
	_, offset := t.Zone()
	zone := -float64(offset) / 3600.0

	hours := float64(utc.Hour()) +
		float64(utc.Minute())/60.0 +
		float64(utc.Second())/3600.0

	jd := timeutil.JulianDayOf(utc)
	T := timeutil.JulianCentury(jd + hours/24.0)

	dec := Declination(T)
	eqtime := EquationOfTime(T)

	// True solar time in minutes, from civil time at the observer's zone.
	solarTimeFix := eqtime + 4.0*lon + 60.0*zone
	trueSolarTime := float64(t.Hour())*60.0 +
		float64(t.Minute()) +
		float64(t.Second())/60.0 +
		solarTimeFix
	trueSolarTime = timeutil.NormalizeMinutes(trueSolarTime)

	hourAngle := trueSolarTime/4.0 - 180.0
	if hourAngle < -180 {
		hourAngle += 360.0
	}

	csz := timeutil.SinD(lat)*timeutil.SinD(dec) +
		timeutil.CosD(lat)*timeutil.CosD(dec)*timeutil.CosD(hourAngle)
	csz = timeutil.Clamp(csz, -1.0, 1.0)

	zenith := timeutil.Rad2Deg(math.Acos(csz))

	var azimuth float64
	azDenom := timeutil.CosD(lat) * timeutil.SinD(zenith)

	if math.Abs(azDenom) > azimuthGuard {
		azRad := (timeutil.SinD(lat)*timeutil.CosD(zenith) - timeutil.SinD(dec)) / azDenom
		azRad = timeutil.Clamp(azRad, -1.0, 1.0)

		azimuth = 180.0 - timeutil.Rad2Deg(math.Acos(azRad))
		if hourAngle > 0.0 {
			azimuth = -azimuth
		}
	} else if lat > 0.0 {
		azimuth = 180.0
	} else {
		azimuth = 0.0
	}

	azimuth = timeutil.Normalize360(azimuth)

	if withRefraction {
		zenith -= RefractionAtZenith(zenith)
	}

	return Position{Zenith: zenith, Azimuth: azimuth}
}
