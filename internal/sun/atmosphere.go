package sun

import (
	"math"

	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// EarthRadius is the radius used for horizon dip, in metres.
const EarthRadius = 6356900.0

// MaxLatitude bounds the latitude used in trigonometric solves; cos(lat)
// appears in denominators and vanishes at the poles.
const MaxLatitude = 89.8

// ClampLatitude limits lat to ±MaxLatitude.
func ClampLatitude(lat float64) float64 {
	return timeutil.Clamp(lat, -MaxLatitude, MaxLatitude)
}

// HorizonDip returns the extra depression, in degrees, visible around the
// curve of the Earth from a height of elevation metres.
func HorizonDip(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}

	r := EarthRadius
	theta1 := math.Acos(r / (r + elevation))

	a2 := r * math.Sin(theta1)
	b2 := r - r*math.Cos(theta1)
	h2 := math.Hypot(a2, b2)

	return timeutil.Rad2Deg(math.Acos(a2 / h2))
}

// ObscuringFeatureDip returns the extra depression, in degrees, needed for
// the Sun to clear a feature at the given horizontal and vertical distance.
// The sign follows the horizontal component.
func ObscuringFeatureDip(horizontal, vertical float64) float64 {
	if horizontal == 0 {
		return 0
	}

	dip := timeutil.Rad2Deg(math.Atan2(math.Abs(vertical), math.Abs(horizontal)))
	if horizontal < 0 {
		return -dip
	}
	return dip
}

// RefractionAtZenith returns the atmospheric refraction, in degrees, for
// the Sun at the given zenith angle.
func RefractionAtZenith(zenith float64) float64 {
	elevation := 90 - zenith
	if elevation >= 85.0 {
		return 0
	}

	var arcsec float64
	te := timeutil.TanD(elevation)

	switch {
	case elevation > 5.0:
		arcsec = 58.1/te - 0.07/(te*te*te) + 0.000086/(te*te*te*te*te)
	case elevation > -0.575:
		step1 := -12.79 + elevation*0.711
		step2 := 103.4 + elevation*step1
		step3 := -518.2 + elevation*step2
		arcsec = 1735.0 + elevation*step3
	default:
		arcsec = -20.774 / te
	}

	return arcsec / 3600.0
}
