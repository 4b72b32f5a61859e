package sunglide

import (
	"errors"
	"time"
)

// Window is a time interval with End after Start.
type Window struct {
	Start time.Time `json:"start" msgpack:"start"`
	End   time.Time `json:"end" msgpack:"end"`
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// between returns the window spanning the Sun's passage from zenith z1 to
// z2 in direction dir. z1 is crossed first when rising; a setting Sun
// crosses them in reverse and the pair is swapped.
func between(obs Observer, date time.Time, z1, z2 float64, dir SunDirection, tz *time.Location) (Window, error) {
	start, err := TimeOfTransit(obs, date, z1, dir, tz)
	if err != nil {
		return Window{}, zenithError(err, z1)
	}
	end, err := TimeOfTransit(obs, date, z2, dir, tz)
	if err != nil {
		return Window{}, zenithError(err, z2)
	}

	if dir == Setting {
		start, end = end, start
	}
	return Window{Start: start, End: end}, nil
}

// Twilight returns the interval between the Sun at 6° below the horizon
// and sunrise (Rising) or sunset (Setting).
func Twilight(obs Observer, date time.Time, dir SunDirection, tz *time.Location) (Window, error) {
	if !dir.Valid() {
		return Window{}, ErrInvalidDirection
	}

	const zenith = 90 + 6.0
	edge, err := TimeOfTransit(obs, date, zenith, dir, tz)
	if err != nil {
		return Window{}, zenithError(err, zenith)
	}

	if dir == Rising {
		rise, err := Sunrise(obs, date, tz)
		if err != nil {
			return Window{}, err
		}
		return Window{Start: edge, End: rise}, nil
	}

	set, err := Sunset(obs, date, tz)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: set, End: edge}, nil
}

// GoldenHour returns the interval when the Sun is between 4° below and 6°
// above the horizon.
func GoldenHour(obs Observer, date time.Time, dir SunDirection, tz *time.Location) (Window, error) {
	return between(obs, date, 90+4, 90-6, dir, tz)
}

// BlueHour returns the interval when the Sun is between 6° and 4° below
// the horizon.
func BlueHour(obs Observer, date time.Time, dir SunDirection, tz *time.Location) (Window, error) {
	return between(obs, date, 90+6, 90+4, dir, tz)
}

// Daylight returns sunrise to sunset.
func Daylight(obs Observer, date time.Time, tz *time.Location) (Window, error) {
	start, err := Sunrise(obs, date, tz)
	if err != nil {
		return Window{}, err
	}
	end, err := Sunset(obs, date, tz)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

// Night returns civil dusk on date to civil dawn on the following day.
func Night(obs Observer, date time.Time, tz *time.Location) (Window, error) {
	start, err := Dusk(obs, date, Civil, tz)
	if err != nil {
		return Window{}, err
	}
	end, err := Dawn(obs, nextDay(date), Civil, tz)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

// rahukaalamOctant maps the weekday to the inauspicious eighth of the day
// or night.
var rahukaalamOctant = [...]int{
	time.Sunday:    7,
	time.Monday:    1,
	time.Tuesday:   6,
	time.Wednesday: 4,
	time.Thursday:  5,
	time.Friday:    3,
	time.Saturday:  2,
}

// Rahukaalam divides the day (sunrise to sunset) or, when daytime is
// false, the night (sunset to the next sunrise) into eight equal parts and
// returns the part assigned to date's weekday.
func Rahukaalam(obs Observer, date time.Time, daytime bool, tz *time.Location) (Window, error) {
	var (
		span Window
		err  error
	)

	if daytime {
		span, err = Daylight(obs, date, tz)
	} else {
		span.Start, err = Sunset(obs, date, tz)
		if err == nil {
			span.End, err = Sunrise(obs, nextDay(date), tz)
		}
	}
	if err != nil {
		return Window{}, err
	}

	octant := span.Duration() / 8
	start := span.Start.Add(octant * time.Duration(rahukaalamOctant[date.Weekday()]))
	return Window{Start: start, End: start.Add(octant)}, nil
}

func nextDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, date.Location())
}

// DaylightHours returns the time between sunrise and sunset in hours.
// During polar night it returns 0 and during polar day 24, each with the
// *ValueError from the failed sunrise.
func DaylightHours(obs Observer, date time.Time) (float64, error) {
	w, err := Daylight(obs, date, time.UTC)
	if err != nil {
		var ve *ValueError
		if errors.As(err, &ve) && ve.Kind == AlwaysAbove {
			return 24, err
		}
		return 0, err
	}
	return w.Duration().Hours(), nil
}

// DaylightPhases holds the morning and evening windows of a phase such as
// golden or blue hour.
type DaylightPhases struct {
	Morning Window `json:"morning" msgpack:"morning"`
	Evening Window `json:"evening" msgpack:"evening"`

	// HasMorning and HasEvening report whether the corresponding window
	// exists on this date at this location.
	HasMorning bool `json:"has_morning" msgpack:"has_morning"`
	HasEvening bool `json:"has_evening" msgpack:"has_evening"`
}

// GoldenHours returns both golden hours of date. It fails only when
// neither exists, returning the morning error.
func GoldenHours(obs Observer, date time.Time, tz *time.Location) (DaylightPhases, error) {
	return phases(obs, date, tz, GoldenHour)
}

// BlueHours returns both blue hours of date.
func BlueHours(obs Observer, date time.Time, tz *time.Location) (DaylightPhases, error) {
	return phases(obs, date, tz, BlueHour)
}

type windowFunc func(Observer, time.Time, SunDirection, *time.Location) (Window, error)

func phases(obs Observer, date time.Time, tz *time.Location, fn windowFunc) (DaylightPhases, error) {
	var p DaylightPhases

	morning, errMorning := fn(obs, date, Rising, tz)
	if errMorning == nil {
		p.Morning, p.HasMorning = morning, true
	}

	evening, errEvening := fn(obs, date, Setting, tz)
	if errEvening == nil {
		p.Evening, p.HasEvening = evening, true
	}

	if !p.HasMorning && !p.HasEvening {
		return DaylightPhases{}, errMorning
	}
	return p, nil
}
