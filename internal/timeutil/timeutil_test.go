package timeutil

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  float64
	}{
		{2012, time.January, 1, 2455927.5},
		{2013, time.January, 1, 2456293.5},
		{2013, time.June, 1, 2456444.5},
		{1867, time.February, 1, 2402998.5},
		{3200, time.November, 14, 2890153.5},
	}

	for _, tt := range tests {
		got := JulianDay(tt.year, tt.month, tt.day)
		if got != tt.want {
			t.Errorf("JulianDay(%d-%02d-%02d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
		}

		// Same algorithm as Meeus chapter 7.
		ref := julian.CalendarGregorianToJD(tt.year, int(tt.month), float64(tt.day))
		if got != ref {
			t.Errorf("JulianDay(%d-%02d-%02d) = %v, meeus gives %v", tt.year, tt.month, tt.day, got, ref)
		}
	}
}

func TestJulianDayOfUsesLocalDate(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 02:00 IST on the 2nd is still the 1st in UTC; the local date wins.
	tm := time.Date(2012, time.January, 2, 2, 0, 0, 0, kolkata)
	if got, want := JulianDayOf(tm), 2455928.5; got != want {
		t.Errorf("JulianDayOf = %v, want %v", got, want)
	}
}

func TestJulianCenturyRoundTrip(t *testing.T) {
	tests := []struct {
		jd float64
		jc float64
	}{
		{2455927.5, 0.119986311},
		{2456293.5, 0.130006845},
		{2456444.5, 0.134140999},
		{2402998.5, -1.329130732},
		{2890153.5, 12.00844627},
	}

	for _, tt := range tests {
		if got := JulianCentury(tt.jd); math.Abs(got-tt.jc) > 1e-4 {
			t.Errorf("JulianCentury(%v) = %v, want %v", tt.jd, got, tt.jc)
		}
		if got := JulianDayFromCentury(tt.jc); math.Abs(got-tt.jd) > 1e-4 {
			t.Errorf("JulianDayFromCentury(%v) = %v, want %v", tt.jc, got, tt.jd)
		}
		if got := JulianCentury(JulianDayFromCentury(tt.jc)); math.Abs(got-tt.jc) > 1e-4 {
			t.Errorf("round trip of %v = %v", tt.jc, got)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	base := MidnightUTC(2020, time.June, 6)

	got := AddMinutes(base, 90.5)
	want := time.Date(2020, time.June, 6, 1, 30, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddMinutes(90.5) = %v, want %v", got, want)
	}

	got = AddMinutes(base, -30)
	want = time.Date(2020, time.June, 5, 23, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddMinutes(-30) = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		in   float64
		want float64
	}{
		{"360 negative", Normalize360, -90, 270},
		{"360 wrap", Normalize360, 725, 5},
		{"360 zero", Normalize360, 360, 0},
		{"minutes negative", NormalizeMinutes, -60, 1380},
		{"minutes wrap", NormalizeMinutes, 1500, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
