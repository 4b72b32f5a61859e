// Package solver finds the times at which the Sun reaches a given zenith
// angle. The analytic path inverts the hour-angle relation twice. The
// numeric path samples the computed position and bisects the bracket.
package solver

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// Direction selects the morning or evening solution of the hour-angle
// relation.
type Direction int

const (
	Rising  Direction = 1
	Setting Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Rising:
		return "rising"
	case Setting:
		return "setting"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MathError reports that the Sun never reaches the requested zenith angle
// at the given latitude and declination.
type MathError struct {
	Latitude    float64
	Declination float64
	Zenith      float64
	msg         string
}

func (e *MathError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("sun never reaches zenith %.4f° at latitude %.4f° (declination %.4f°)",
		e.Zenith, e.Latitude, e.Declination)
}

// WithMessage returns a copy of e reporting msg instead of the default text.
func (e *MathError) WithMessage(msg string) *MathError {
	c := *e
	c.msg = msg
	return &c
}

// HourAngle returns the hour angle, in radians, at which the Sun stands at
// zenith degrees for an observer at latitude lat when its declination is
// dec. Setting negates the result.
func HourAngle(lat, dec, zenith float64, dir Direction) (float64, error) {
	h := (timeutil.CosD(zenith) - timeutil.SinD(lat)*timeutil.SinD(dec)) /
		(timeutil.CosD(lat) * timeutil.CosD(dec))

	if math.IsNaN(h) || h < -1 || h > 1 {
		return 0, &MathError{Latitude: lat, Declination: dec, Zenith: zenith}
	}

	ha := math.Acos(h)
	if dir == Setting {
		ha = -ha
	}
	return ha, nil
}

// Valid reports whether d is Rising or Setting.
func (d Direction) Valid() bool {
	return d == Rising || d == Setting
}
