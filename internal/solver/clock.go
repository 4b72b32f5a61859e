package solver

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunglide/internal/sun"
	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// ClockTime is a fractional hour split into whole clock fields. DayOffset
// is -1, 0 or +1 when carrying moved the time across midnight.
type ClockTime struct {
	DayOffset int
	Hour      int
	Minute    int
	Second    int
}

// SplitHours converts fractional hours into clock fields, carrying
// overflow and underflow through minutes, hours and days.
func SplitHours(hours float64) ClockTime {
	hour := math.Floor(hours)
	minuteF := (hours - hour) * 60.0
	minute := math.Floor(minuteF)
	second := math.Floor((minuteF - minute) * 60.0)

	c := ClockTime{Hour: int(hour), Minute: int(minute), Second: int(second)}

	if c.Second > 59 {
		c.Second -= 60
		c.Minute++
	} else if c.Second < 0 {
		c.Second += 60
		c.Minute--
	}

	if c.Minute > 59 {
		c.Minute -= 60
		c.Hour++
	} else if c.Minute < 0 {
		c.Minute += 60
		c.Hour--
	}

	if c.Hour > 23 {
		c.Hour -= 24
		c.DayOffset++
	} else if c.Hour < 0 {
		c.Hour += 24
		c.DayOffset--
	}

	return c
}

// On returns the UTC instant at c on the given date, applying DayOffset.
func (c ClockTime) On(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day+c.DayOffset, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

// Noon returns solar noon, in UTC, for longitude lon on the given date.
func Noon(lon float64, year int, month time.Month, day int) time.Time {
	T := timeutil.JulianCentury(timeutil.JulianDay(year, month, day))
	eqtime := sun.EquationOfTime(T)

	hours := (720.0 - 4*lon - eqtime) / 60.0
	return SplitHours(hours).On(year, month, day)
}

// Midnight returns solar midnight, in UTC, for longitude lon on the given
// date.
func Midnight(lon float64, year int, month time.Month, day int) time.Time {
	jd := timeutil.JulianDay(year, month, day)
	T := timeutil.JulianCentury(jd + 0.5 - lon/360.0)
	eqtime := sun.EquationOfTime(T)

	hours := (-lon*4.0 - eqtime) / 60.0
	return SplitHours(hours).On(year, month, day)
}
