// Package moon implements low-precision lunar phase and illumination
// models.
package moon

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunglide/internal/sun"
	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// CycleDays is the length of the phase scale returned by Phase.
const CycleDays = 28.0

// properAngle folds v into [0, 360).
func properAngle(v float64) float64 {
	if v > 0 {
		v /= 360.0
		return (v - math.Floor(v)) * 360.0
	}
	return v + math.Ceil(math.Abs(v/360.0))*360.0
}

// Phase returns the Moon's phase on the given date as a number in [0, 28):
// 0 new, 7 first quarter, 14 full, 21 last quarter.
func Phase(year int, month time.Month, day int) float64 {
	jd := timeutil.JulianDay(year, month, day)
	dt := math.Pow(jd-2382148, 2) / (41048480 * 86400)
	T := (jd + dt - timeutil.J2000) / timeutil.DaysPerCentury
	T2 := T * T
	T3 := T2 * T

	D := timeutil.Deg2Rad(properAngle(297.85 + 445267.1115*T - 0.00163*T2 + T3/545868))
	M := timeutil.Deg2Rad(properAngle(357.53 + 35999.0503*T))
	M1 := timeutil.Deg2Rad(properAngle(134.96 + 477198.8676*T + 0.008997*T2 + T3/69699))

	elong := timeutil.Rad2Deg(D) + 6.29*math.Sin(M1)
	elong -= 2.1 * math.Sin(M)
	elong += 1.27 * math.Sin(2*D-M1)
	elong += 0.66 * math.Sin(2*D)
	elong = math.Round(properAngle(elong))

	phase := (elong + 6.43) / 360 * CycleDays
	if phase >= CycleDays {
		phase -= CycleDays
	}
	return phase
}

// Illumination describes the lit portion of the Moon at an instant.
type Illumination struct {
	Fraction   float64 // illuminated fraction [0..1], 0=new, 1=full
	Elongation float64 // Sun-Moon angular separation in degrees [0..180]
	Waxing     bool
	Distance   float64 // km
}

// IlluminationAt computes the Moon's illuminated fraction at t from the
// angular separation of the Moon and the Sun.
func IlluminationAt(t time.Time) Illumination {
	utc := t.UTC()
	frac := (float64(utc.Hour()) + float64(utc.Minute())/60 + float64(utc.Second())/3600) / 24
	jd := timeutil.JulianDayOf(utc) + frac

	d := jd - timeutil.J2000
	T := timeutil.JulianCentury(jd)

	mEq := GeocentricEquatorial(d)
	sEq := sun.EquatorialAt(T)

	raSun := timeutil.Deg2Rad(sEq.RA)
	decSun := timeutil.Deg2Rad(sEq.Dec)
	raMoon := timeutil.Deg2Rad(mEq.RA)
	decMoon := timeutil.Deg2Rad(mEq.Dec)

	// cos ψ = sin δs sin δm + cos δs cos δm cos(αs - αm)
	cosPsi := math.Sin(decSun)*math.Sin(decMoon) +
		math.Cos(decSun)*math.Cos(decMoon)*math.Cos(raSun-raMoon)
	cosPsi = timeutil.Clamp(cosPsi, -1, 1)

	return Illumination{
		Fraction:   timeutil.Clamp(0.5*(1-cosPsi), 0, 1),
		Elongation: timeutil.Rad2Deg(math.Acos(cosPsi)),
		Waxing:     timeutil.Normalize360(mEq.RA-sEq.RA) < 180.0,
		Distance:   Distance(T),
	}
}
