package sunglide

import (
	"errors"
	"fmt"
	"time"

	"github.com/thurmanmarka/sunglide/internal/solver"
)

// SunTimes holds the principal solar events of one day.
type SunTimes struct {
	Dawn    time.Time `json:"dawn" msgpack:"dawn"`
	Sunrise time.Time `json:"sunrise" msgpack:"sunrise"`
	Noon    time.Time `json:"noon" msgpack:"noon"`
	Sunset  time.Time `json:"sunset" msgpack:"sunset"`
	Dusk    time.Time `json:"dusk" msgpack:"dusk"`
}

func zone(tz *time.Location) *time.Location {
	if tz == nil {
		return time.UTC
	}
	return tz
}

// TimeOfTransit returns the instant on date at which the Sun's zenith angle
// equals zenith while moving in direction dir. It returns a *MathError if
// the Sun never reaches that zenith on that date.
func TimeOfTransit(obs Observer, date time.Time, zenith float64, dir SunDirection, tz *time.Location) (time.Time, error) {
	if !dir.Valid() {
		return time.Time{}, ErrInvalidDirection
	}

	y, m, d := date.Date()
	t, err := solver.TimeOfTransit(obs.site(), y, m, d, zenith, dir)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(zone(tz)), nil
}

// TimeAtElevation returns the instant on date at which the Sun is at
// elevation degrees above the horizon, moving in direction dir.
// Elevations above 90 are taken as 180-elevation on a setting Sun.
func TimeAtElevation(obs Observer, date time.Time, elevation float64, dir SunDirection, tz *time.Location) (time.Time, error) {
	if elevation > 90 {
		elevation = 180 - elevation
		dir = Setting
	}

	t, err := TimeOfTransit(obs, date, 90-elevation, dir, tz)
	var me *MathError
	if errors.As(err, &me) {
		return time.Time{}, me.WithMessage(
			fmt.Sprintf("sun never reaches an elevation of %g degrees at this location", elevation))
	}
	return t, err
}

// Dawn returns the time in the morning when the Sun is dep below the
// horizon.
func Dawn(obs Observer, date time.Time, dep Depression, tz *time.Location) (time.Time, error) {
	return depressionCrossing(obs, date, dep, Rising, tz)
}

// Dusk returns the time in the evening when the Sun is dep below the
// horizon.
func Dusk(obs Observer, date time.Time, dep Depression, tz *time.Location) (time.Time, error) {
	return depressionCrossing(obs, date, dep, Setting, tz)
}

func depressionCrossing(obs Observer, date time.Time, dep Depression, dir SunDirection, tz *time.Location) (time.Time, error) {
	t, err := TimeOfTransit(obs, date, 90+dep.Degrees(), dir, tz)
	if isMathError(err) {
		return time.Time{}, &ValueError{Kind: NeverReachesDepression, Degrees: dep.Degrees()}
	}
	return t, err
}

// Sunrise returns the time the Sun's upper limb clears the horizon. If the
// Sun does not rise on date the error is a *ValueError of kind AlwaysAbove
// or AlwaysBelow.
func Sunrise(obs Observer, date time.Time, tz *time.Location) (time.Time, error) {
	return horizonCrossing(obs, date, Rising, tz)
}

// Sunset returns the time the Sun's upper limb drops below the horizon.
func Sunset(obs Observer, date time.Time, tz *time.Location) (time.Time, error) {
	return horizonCrossing(obs, date, Setting, tz)
}

func horizonCrossing(obs Observer, date time.Time, dir SunDirection, tz *time.Location) (time.Time, error) {
	t, err := TimeOfTransit(obs, date, 90+SunApparentRadius, dir, tz)
	if !isMathError(err) {
		return t, err
	}

	// Decide between polar day and polar night from the Sun at noon.
	noon := Noon(obs, date, time.UTC)
	if Zenith(obs, noon, true) > 90 {
		return time.Time{}, &ValueError{Kind: AlwaysBelow}
	}
	return time.Time{}, &ValueError{Kind: AlwaysAbove}
}

// Noon returns solar noon, when the Sun crosses the observer's meridian.
func Noon(obs Observer, date time.Time, tz *time.Location) time.Time {
	y, m, d := date.Date()
	return solver.Noon(obs.Longitude, y, m, d).In(zone(tz))
}

// Midnight returns solar midnight, the one nearest 00:00 UTC on date. It
// may fall on the previous day.
func Midnight(obs Observer, date time.Time, tz *time.Location) time.Time {
	y, m, d := date.Date()
	return solver.Midnight(obs.Longitude, y, m, d).In(zone(tz))
}

// Sun returns dawn, sunrise, noon, sunset and dusk for date. dep selects
// the dawn and dusk depression.
func Sun(obs Observer, date time.Time, dep Depression, tz *time.Location) (SunTimes, error) {
	var (
		st  SunTimes
		err error
	)

	if st.Dawn, err = Dawn(obs, date, dep, tz); err != nil {
		return SunTimes{}, err
	}
	if st.Sunrise, err = Sunrise(obs, date, tz); err != nil {
		return SunTimes{}, err
	}
	st.Noon = Noon(obs, date, tz)
	if st.Sunset, err = Sunset(obs, date, tz); err != nil {
		return SunTimes{}, err
	}
	if st.Dusk, err = Dusk(obs, date, dep, tz); err != nil {
		return SunTimes{}, err
	}
	return st, nil
}
