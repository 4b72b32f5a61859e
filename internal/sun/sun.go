// Package sun implements the low-order NOAA/Meeus solar ephemeris, the
// horizon and refraction adjustments applied to it, and the Sun's
// topocentric position for an observer.
//
// Every series takes a Julian century T (see timeutil.JulianCentury) and
// returns degrees unless noted otherwise.
package sun

import (
	"math"

	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and declination)
// in degrees.
type Equatorial struct {
	RA  float64 // right ascension, degrees (-180..180)
	Dec float64 // declination, degrees
}

// EquatorialAt returns the Sun's apparent right ascension and declination
// at Julian century T.
func EquatorialAt(T float64) Equatorial {
	return Equatorial{
		RA:  RightAscension(T),
		Dec: Declination(T),
	}
}

// GeomMeanLongitude is the geometric mean longitude of the Sun, in [0, 360).
func GeomMeanLongitude(T float64) float64 {
	l0 := 280.46646 + T*(36000.76983+0.0003032*T)
	return timeutil.Normalize360(l0)
}

// GeomMeanAnomaly is the geometric mean anomaly of the Sun. It is not
// normalized.
func GeomMeanAnomaly(T float64) float64 {
	return 357.52911 + T*(35999.05029-0.0001537*T)
}

// Eccentricity is the eccentricity of Earth's orbit (dimensionless).
func Eccentricity(T float64) float64 {
	return 0.016708634 - T*(0.000042037+0.0000001267*T)
}

// EquationOfCenter is the Sun's equation of the center.
func EquationOfCenter(T float64) float64 {
	m := timeutil.Deg2Rad(GeomMeanAnomaly(T))

	sinm := math.Sin(m)
	sin2m := math.Sin(m + m)
	sin3m := math.Sin(m + m + m)

	return sinm*(1.914602-T*(0.004817+0.000014*T)) +
		sin2m*(0.019993-0.000101*T) +
		sin3m*0.000289
}

// TrueLongitude is the Sun's true longitude.
func TrueLongitude(T float64) float64 {
	return GeomMeanLongitude(T) + EquationOfCenter(T)
}

// TrueAnomaly is the Sun's true anomaly.
func TrueAnomaly(T float64) float64 {
	return GeomMeanAnomaly(T) + EquationOfCenter(T)
}

// RadiusVector is the Sun-Earth distance in astronomical units.
func RadiusVector(T float64) float64 {
	v := TrueAnomaly(T)
	e := Eccentricity(T)

	return (1.000001018 * (1 - e*e)) / (1 + e*timeutil.CosD(v))
}

// omega is the longitude of the Moon's ascending node, used by the
// nutation and aberration terms.
func omega(T float64) float64 {
	return 125.04 - 1934.136*T
}

// ApparentLongitude is the Sun's apparent longitude, corrected for
// nutation and aberration.
func ApparentLongitude(T float64) float64 {
	return TrueLongitude(T) - 0.00569 - 0.00478*timeutil.SinD(omega(T))
}

// MeanObliquity is the mean obliquity of the ecliptic.
func MeanObliquity(T float64) float64 {
	seconds := 21.448 - T*(46.815+T*(0.00059-T*0.001813))
	return 23.0 + (26.0+seconds/60.0)/60.0
}

// ObliquityCorrection is the mean obliquity plus the nutation term.
func ObliquityCorrection(T float64) float64 {
	return MeanObliquity(T) + 0.00256*timeutil.CosD(omega(T))
}

// RightAscension is the Sun's apparent right ascension in (-180, 180].
func RightAscension(T float64) float64 {
	oc := ObliquityCorrection(T)
	al := ApparentLongitude(T)

	num := timeutil.CosD(oc) * timeutil.SinD(al)
	den := timeutil.CosD(al)

	return timeutil.Rad2Deg(math.Atan2(num, den))
}

// Declination is the Sun's apparent declination.
func Declination(T float64) float64 {
	e := ObliquityCorrection(T)
	lambda := ApparentLongitude(T)

	sint := timeutil.SinD(e) * timeutil.SinD(lambda)
	return timeutil.Rad2Deg(math.Asin(sint))
}

func varY(T float64) float64 {
	y := math.Tan(timeutil.Deg2Rad(ObliquityCorrection(T)) / 2.0)
	return y * y
}

// EquationOfTime returns apparent minus mean solar time, in minutes.
func EquationOfTime(T float64) float64 {
	l0 := timeutil.Deg2Rad(GeomMeanLongitude(T))
	e := Eccentricity(T)
	m := timeutil.Deg2Rad(GeomMeanAnomaly(T))
	y := varY(T)

	sin2l0 := math.Sin(2.0 * l0)
	sinm := math.Sin(m)
	cos2l0 := math.Cos(2.0 * l0)
	sin4l0 := math.Sin(4.0 * l0)
	sin2m := math.Sin(2.0 * m)

	etime := y*sin2l0 -
		2.0*e*sinm +
		4.0*e*y*sinm*cos2l0 -
		0.5*y*y*sin4l0 -
		1.25*e*e*sin2m

	return timeutil.Rad2Deg(etime) * 4.0
}
