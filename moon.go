package sunglide

import (
	"time"

	"github.com/thurmanmarka/sunglide/internal/moon"
)

// MoonPhase returns the Moon's phase on date's calendar day as a number in
// [0, 28):
//
//	0  .. 6.99   New moon
//	7  .. 13.99  First quarter
//	14 .. 20.99  Full moon
//	21 .. 27.99  Last quarter
func MoonPhase(date time.Time) float64 {
	y, m, d := date.Date()
	return moon.Phase(y, m, d)
}

// MoonPhaseName names the quarter a MoonPhase value falls in.
func MoonPhaseName(phase float64) string {
	switch {
	case phase < 7:
		return "New Moon"
	case phase < 14:
		return "First Quarter"
	case phase < 21:
		return "Full Moon"
	default:
		return "Last Quarter"
	}
}

// MoonState describes the illuminated fraction and qualitative phase of
// the Moon at an instant.
type MoonState struct {
	Time       time.Time `json:"time" msgpack:"time"`
	Fraction   float64   `json:"fraction" msgpack:"fraction"`     // illuminated fraction [0..1]
	Elongation float64   `json:"elongation" msgpack:"elongation"` // Sun-Moon separation, degrees
	Waxing     bool      `json:"waxing" msgpack:"waxing"`
	DistanceKm float64   `json:"distance_km" msgpack:"distance_km"`
	Name       string    `json:"name" msgpack:"name"` // e.g. "Waxing Crescent"
}

// MoonAt computes the Moon's illumination at instant t. Illumination is
// the same for every observer, so no Observer is needed.
func MoonAt(t time.Time) MoonState {
	il := moon.IlluminationAt(t)
	return MoonState{
		Time:       t,
		Fraction:   il.Fraction,
		Elongation: il.Elongation,
		Waxing:     il.Waxing,
		DistanceKm: il.Distance,
		Name:       illuminationName(il.Fraction, il.Waxing),
	}
}

func illuminationName(f float64, waxing bool) string {
	const (
		eps        = 0.01 // near 0 or 1
		quarterTol = 0.05 // fraction window around 0.5
	)

	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case f > 0.5-quarterTol && f < 0.5+quarterTol:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
