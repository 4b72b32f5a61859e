package timeutil

import (
	"math"
	"time"
)

// -----------------------------
// Julian calendar conversion
// -----------------------------

const (
	// J2000 is the Julian Day of the J2000.0 epoch.
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0
)

// JulianDay returns the Julian Day Number at 0h of the given proleptic
// Gregorian calendar date.
func JulianDay(year int, month time.Month, day int) float64 {
	y := float64(year)
	m := float64(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	a := math.Floor(y / 100.0)
	b := 2 - a + math.Floor(a/4.0)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + b - 1524.5
}

// JulianDayOf returns the Julian Day Number at 0h of t's calendar date,
// read in t's own location.
func JulianDayOf(t time.Time) float64 {
	year, month, day := t.Date()
	return JulianDay(year, month, day)
}

// JulianCentury converts a Julian Day to centuries since J2000.0.
func JulianCentury(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// JulianDayFromCentury is the inverse of JulianCentury.
func JulianDayFromCentury(jc float64) float64 {
	return jc*DaysPerCentury + J2000
}

// MidnightUTC returns 00:00 UTC on the given calendar date.
func MidnightUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddMinutes offsets t by a fractional number of minutes, rounded to the
// nearest microsecond.
func AddMinutes(t time.Time, minutes float64) time.Time {
	us := math.Round(minutes * 60e6)
	return t.Add(time.Duration(us) * time.Microsecond)
}

// -----------------------------
// Basic degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

// Normalize360 folds d into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// NormalizeMinutes folds a minute-of-day value into [0, 1440).
func NormalizeMinutes(m float64) float64 {
	m = math.Mod(m, 1440.0)
	if m < 0 {
		m += 1440.0
	}
	return m
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
