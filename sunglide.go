// Package sunglide computes the apparent position of the Sun and the times
// of solar events (dawn, sunrise, noon, sunset, dusk, twilight, golden and
// blue hour, Rahukaalam, daylight and night) for an observer on a given
// date.
//
// The models are the classical low-order NOAA/Meeus series: accurate to
// about a minute of time away from the poles, not almanac grade.
//
// Every function is a pure function of its arguments. Dates are read from
// the year, month and day fields of the time.Time passed in; the tz
// argument only selects the location of the returned instants and defaults
// to UTC when nil. Today and Now are the only functions that read the
// system clock.
package sunglide

import (
	"errors"
	"fmt"
	"math"

	"github.com/thurmanmarka/sunglide/internal/solver"
	"github.com/thurmanmarka/sunglide/internal/sun"
)

// SunApparentRadius is half the Sun's apparent diameter, in degrees. The
// Sun rises and sets when its upper limb touches the horizon.
const SunApparentRadius = 32.0 / (60.0 * 2.0)

// Elevation describes the height of an observer. It is implemented only by
// Height and ObscuringFeature; a nil Elevation means sea level.
type Elevation interface {
	// Adjustment returns the extra depression, in degrees, the observer
	// sees below the geometric horizon.
	Adjustment() float64
	isElevation()
}

// Height is an observer's elevation above sea level in metres.
type Height float64

func (h Height) Adjustment() float64 { return sun.HorizonDip(float64(h)) }
func (Height) isElevation()          {}

// ObscuringFeature is a nearby feature raising the observer's horizon,
// given as horizontal and vertical distances in metres.
type ObscuringFeature struct {
	Horizontal float64
	Vertical   float64
}

func (f ObscuringFeature) Adjustment() float64 {
	return sun.ObscuringFeatureDip(f.Horizontal, f.Vertical)
}
func (ObscuringFeature) isElevation() {}

// Observer is a position on the Earth's surface.
type Observer struct {
	Latitude  float64   // degrees, north positive
	Longitude float64   // degrees, east positive
	Elevation Elevation // nil for sea level
}

// NewObserver returns a sea-level observer at (lat, lon).
func NewObserver(lat, lon float64) Observer {
	return Observer{Latitude: lat, Longitude: lon}
}

// elevationAdjustment returns the observer's horizon depression in degrees.
func (o Observer) elevationAdjustment() float64 {
	if o.Elevation == nil {
		return 0
	}
	return o.Elevation.Adjustment()
}

func (o Observer) site() solver.Site {
	return solver.Site{
		Latitude:            o.Latitude,
		Longitude:           o.Longitude,
		ElevationAdjustment: o.elevationAdjustment(),
	}
}

// SunDirection selects the rising (morning) or setting (evening) crossing.
type SunDirection = solver.Direction

const (
	Rising  = solver.Rising
	Setting = solver.Setting
)

// ErrInvalidDirection is returned when a SunDirection is neither Rising
// nor Setting.
var ErrInvalidDirection = errors.New("sun direction must be Rising or Setting")

// Depression is the angle of the Sun below the horizon that defines dawn
// and dusk. The zero value is Civil.
type Depression struct {
	degrees float64
}

var (
	Civil        = Depression{6.0}
	Nautical     = Depression{12.0}
	Astronomical = Depression{18.0}
)

// DepressionDegrees returns a Depression of d degrees. d must be a finite
// positive number.
func DepressionDegrees(d float64) (Depression, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return Depression{}, fmt.Errorf("invalid depression %v: must be a positive number of degrees", d)
	}
	return Depression{d}, nil
}

// ParseDepression accepts "civil", "nautical", "astronomical" or a number
// of degrees.
func ParseDepression(s string) (Depression, error) {
	switch s {
	case "", "civil":
		return Civil, nil
	case "nautical":
		return Nautical, nil
	case "astronomical":
		return Astronomical, nil
	}

	d, err := ParseDMS(s, 0)
	if err != nil {
		return Depression{}, fmt.Errorf("invalid depression %q: %w", s, err)
	}
	return DepressionDegrees(d)
}

// Degrees returns the depression angle.
func (d Depression) Degrees() float64 {
	if d.degrees == 0 {
		return Civil.degrees
	}
	return d.degrees
}

func (d Depression) String() string {
	switch d.Degrees() {
	case Civil.degrees:
		return "civil"
	case Nautical.degrees:
		return "nautical"
	case Astronomical.degrees:
		return "astronomical"
	default:
		return fmt.Sprintf("%g°", d.Degrees())
	}
}
