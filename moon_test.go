package sunglide

import (
	"testing"
	"time"
)

func TestMoonPhase(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{utc(2015, time.December, 1, 0, 0), "Full Moon"},
		{utc(2015, time.December, 3, 0, 0), "Last Quarter"},
		{utc(2014, time.January, 1, 0, 0), "New Moon"},
		{utc(2025, time.November, 5, 0, 0), "First Quarter"},
	}

	for _, tt := range tests {
		phase := MoonPhase(tt.date)
		if phase < 0 || phase >= 28 {
			t.Errorf("MoonPhase(%s) = %v out of [0, 28)", tt.date.Format(time.DateOnly), phase)
		}
		if got := MoonPhaseName(phase); got != tt.want {
			t.Errorf("MoonPhaseName(MoonPhase(%s) = %.2f) = %q, want %q",
				tt.date.Format(time.DateOnly), phase, got, tt.want)
		}
	}
}

func TestMoonAt(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		t.Fatalf("failed to load America/Phoenix: %v", err)
	}

	// Full moon 2025-11-05 13:19 UTC.
	tm := time.Date(2025, time.November, 5, 6, 19, 0, 0, loc)
	m := MoonAt(tm)

	t.Logf("Time      : %v", m.Time)
	t.Logf("Fraction  : %.3f", m.Fraction)
	t.Logf("Elongation: %.2f°", m.Elongation)
	t.Logf("Waxing    : %v", m.Waxing)
	t.Logf("Name      : %s", m.Name)

	if m.Name != "Full Moon" {
		t.Errorf("Name = %q, want Full Moon", m.Name)
	}
	if !m.Time.Equal(tm) {
		t.Errorf("Time = %v, want %v", m.Time, tm)
	}
}

func TestIlluminationName(t *testing.T) {
	tests := []struct {
		f      float64
		waxing bool
		want   string
	}{
		{0.001, true, "New Moon"},
		{0.2, true, "Waxing Crescent"},
		{0.2, false, "Waning Crescent"},
		{0.5, true, "First Quarter"},
		{0.5, false, "Last Quarter"},
		{0.8, true, "Waxing Gibbous"},
		{0.8, false, "Waning Gibbous"},
		{0.995, false, "Full Moon"},
	}
	for _, tt := range tests {
		if got := illuminationName(tt.f, tt.waxing); got != tt.want {
			t.Errorf("illuminationName(%v, %v) = %q, want %q", tt.f, tt.waxing, got, tt.want)
		}
	}
}
