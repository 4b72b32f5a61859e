package sunglide

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

var (
	london   = NewObserver(51.50853, -0.12574)
	newDelhi = NewObserver(28.61, 77.22)
	arctic   = NewObserver(86, 77.2)
)

// diffMinutes returns the absolute difference between two times in minutes.
func diffMinutes(a, b time.Time) float64 {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Minutes()
}

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestDawnLondon(t *testing.T) {
	days := []int{1, 2, 3, 12, 25}

	tests := []struct {
		dep  Depression
		want [][2]int // hour, minute for each day
	}{
		{Civil, [][2]int{{7, 4}, {7, 5}, {7, 6}, {7, 16}, {7, 25}}},
		{Nautical, [][2]int{{6, 22}, {6, 23}, {6, 24}, {6, 33}, {6, 41}}},
		{Astronomical, [][2]int{{5, 41}, {5, 42}, {5, 44}, {5, 52}, {6, 1}}},
	}

	for _, tt := range tests {
		for i, day := range days {
			date := utc(2015, time.December, day, 0, 0)
			got, err := Dawn(london, date, tt.dep, nil)
			if err != nil {
				t.Fatalf("Dawn(%s, %v) returned error: %v", tt.dep, date, err)
			}

			want := utc(2015, time.December, day, tt.want[i][0], tt.want[i][1])
			if d := diffMinutes(got, want); d > 1 {
				t.Errorf("%s dawn on %s = %v, want %v ±1m", tt.dep, date.Format(time.DateOnly), got, want)
			}
		}
	}
}

func TestDawnOrderedByDepression(t *testing.T) {
	date := utc(2015, time.December, 1, 0, 0)

	astro, _ := Dawn(london, date, Astronomical, nil)
	nautical, _ := Dawn(london, date, Nautical, nil)
	civil, _ := Dawn(london, date, Civil, nil)

	if !astro.Before(nautical) || !nautical.Before(civil) {
		t.Errorf("dawn not ordered by depression: astronomical %v, nautical %v, civil %v", astro, nautical, civil)
	}

	duskCivil, _ := Dusk(london, date, Civil, nil)
	duskAstro, _ := Dusk(london, date, Astronomical, nil)
	if !duskCivil.Before(duskAstro) {
		t.Errorf("civil dusk %v not before astronomical dusk %v", duskCivil, duskAstro)
	}
}

func TestSunLondon(t *testing.T) {
	date := utc(2015, time.December, 1, 0, 0)

	st, err := Sun(london, date, Depression{}, nil)
	if err != nil {
		t.Fatalf("Sun returned error: %v", err)
	}

	want := SunTimes{
		Dawn:    utc(2015, time.December, 1, 7, 4),
		Sunrise: utc(2015, time.December, 1, 7, 43),
		Noon:    utc(2015, time.December, 1, 11, 49),
		Sunset:  utc(2015, time.December, 1, 15, 55),
		Dusk:    utc(2015, time.December, 1, 16, 34),
	}

	check := func(name string, got, want time.Time) {
		t.Helper()
		if d := diffMinutes(got, want); d > 1 {
			t.Errorf("%s = %v, want %v ±1m", name, got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("%s location = %v, want UTC", name, got.Location())
		}
	}

	check("dawn", st.Dawn, want.Dawn)
	check("sunrise", st.Sunrise, want.Sunrise)
	check("noon", st.Noon, want.Noon)
	check("sunset", st.Sunset, want.Sunset)
	check("dusk", st.Dusk, want.Dusk)
}

func TestMidnightCarriesDay(t *testing.T) {
	// West of Greenwich on this date solar midnight falls before 00:00 UTC.
	got := Midnight(london, utc(2015, time.December, 1, 0, 0), nil)
	want := time.Date(2015, time.November, 30, 23, 49, 25, 0, time.UTC)

	if got.Sub(want).Abs() > time.Second {
		t.Errorf("Midnight = %v, want %v", got, want)
	}
}

func TestEventsInTimezone(t *testing.T) {
	sydneyTZ, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	sydney := NewObserver(-33.8688, 151.2093)
	date := time.Date(2025, time.December, 21, 0, 0, 0, 0, sydneyTZ)

	rise, err := Sunrise(sydney, date, sydneyTZ)
	if err != nil {
		t.Fatalf("Sunrise returned error: %v", err)
	}
	set, err := Sunset(sydney, date, sydneyTZ)
	if err != nil {
		t.Fatalf("Sunset returned error: %v", err)
	}

	if want := time.Date(2025, time.December, 21, 5, 41, 0, 0, sydneyTZ); diffMinutes(rise, want) > 1 {
		t.Errorf("Sydney sunrise = %v, want %v", rise, want)
	}
	if want := time.Date(2025, time.December, 21, 20, 5, 0, 0, sydneyTZ); diffMinutes(set, want) > 1 {
		t.Errorf("Sydney sunset = %v, want %v", set, want)
	}
	if rise.Location() != sydneyTZ {
		t.Errorf("sunrise location = %v, want %v", rise.Location(), sydneyTZ)
	}
}

func TestSunriseElevatedObserver(t *testing.T) {
	date := utc(2015, time.December, 1, 0, 0)

	sea, _ := Sunrise(london, date, nil)

	hill := london
	hill.Elevation = Height(300)
	high, err := Sunrise(hill, date, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !high.Before(sea) {
		t.Errorf("sunrise at 300 m (%v) not before sea level (%v)", high, sea)
	}

	valley := london
	valley.Elevation = ObscuringFeature{Horizontal: -1000, Vertical: 100}
	low, err := Sunrise(valley, date, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !low.After(sea) {
		t.Errorf("sunrise behind a ridge (%v) not after sea level (%v)", low, sea)
	}
}

func TestPolarSunriseErrors(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		kind ErrorKind
		msg  string
	}{
		{"midsummer", utc(2001, time.June, 21, 0, 0), AlwaysAbove, "always above"},
		{"midwinter", utc(2001, time.December, 21, 0, 0), AlwaysBelow, "always below"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, fn := range map[string]func(Observer, time.Time, *time.Location) (time.Time, error){
				"Sunrise": Sunrise,
				"Sunset":  Sunset,
			} {
				_, err := fn(arctic, tt.date, nil)

				var ve *ValueError
				if !errors.As(err, &ve) {
					t.Fatalf("%s error = %v, want *ValueError", name, err)
				}
				if ve.Kind != tt.kind {
					t.Errorf("%s kind = %v, want %v", name, ve.Kind, tt.kind)
				}
				if !strings.Contains(err.Error(), tt.msg) {
					t.Errorf("%s message %q does not contain %q", name, err, tt.msg)
				}

				var me *MathError
				if errors.As(err, &me) {
					t.Errorf("%s error unwraps to *MathError", name)
				}
			}
		})
	}
}

func TestDawnNeverReached(t *testing.T) {
	_, err := Dawn(arctic, utc(2001, time.June, 21, 0, 0), Astronomical, nil)

	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("Dawn error = %v, want *ValueError", err)
	}
	if ve.Kind != NeverReachesDepression || ve.Degrees != 18 {
		t.Errorf("ValueError = %+v, want NeverReachesDepression 18", ve)
	}
	if want := "sun never reaches 18 degrees below the horizon"; !strings.Contains(err.Error(), want) {
		t.Errorf("message %q does not contain %q", err, want)
	}
}

func TestTimeOfTransitMathError(t *testing.T) {
	_, err := TimeOfTransit(arctic, utc(2001, time.June, 21, 0, 0), 108, Rising, nil)

	var me *MathError
	if !errors.As(err, &me) {
		t.Fatalf("TimeOfTransit error = %v, want *MathError", err)
	}
}

func TestInvalidDirection(t *testing.T) {
	date := utc(2015, time.December, 1, 0, 0)

	if _, err := TimeOfTransit(london, date, 96, SunDirection(0), nil); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("TimeOfTransit error = %v, want ErrInvalidDirection", err)
	}
	if _, err := GoldenHour(london, date, SunDirection(3), nil); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("GoldenHour error = %v, want ErrInvalidDirection", err)
	}
}

func TestTimeAtElevationRoundTrip(t *testing.T) {
	date := utc(2020, time.June, 6, 0, 0)

	for _, e := range []float64{1, 2, 3, 5, 10, 20, 30, 40, 50} {
		at, err := TimeAtElevation(london, date, e, Rising, nil)
		if err != nil {
			t.Fatalf("TimeAtElevation(%v) returned error: %v", e, err)
		}
		if got := ElevationAngle(london, at, true); math.Abs(got-e) > 0.05 {
			t.Errorf("elevation at TimeAtElevation(%v) = %v", e, got)
		}
	}
}

func TestTimeAtElevationMirrored(t *testing.T) {
	date := utc(2020, time.June, 6, 0, 0)

	mirrored, err := TimeAtElevation(london, date, 150, Rising, nil)
	if err != nil {
		t.Fatal(err)
	}
	setting, err := TimeAtElevation(london, date, 30, Setting, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !mirrored.Equal(setting) {
		t.Errorf("TimeAtElevation(150) = %v, want setting at 30° %v", mirrored, setting)
	}
}

func TestTimeAtElevationUnreachable(t *testing.T) {
	// London's noon elevation in December is under 17°.
	_, err := TimeAtElevation(london, utc(2015, time.December, 1, 0, 0), 30, Rising, nil)

	var me *MathError
	if !errors.As(err, &me) {
		t.Fatalf("TimeAtElevation error = %v, want *MathError", err)
	}
	if want := "sun never reaches an elevation of 30 degrees"; !strings.Contains(err.Error(), want) {
		t.Errorf("message %q does not contain %q", err, want)
	}
}

func TestDateFieldsSelectDay(t *testing.T) {
	// The same calendar date in two zones yields the same UTC event.
	tokyo := time.FixedZone("JST", 9*3600)

	a, err := Sunrise(london, time.Date(2015, time.December, 1, 23, 0, 0, 0, tokyo), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sunrise(london, utc(2015, time.December, 1, 0, 0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("Sunrise differs by date zone: %v vs %v", a, b)
	}
}
