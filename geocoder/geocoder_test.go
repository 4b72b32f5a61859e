package geocoder

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/thurmanmarka/sunglide"
)

func TestDefaultGroups(t *testing.T) {
	db := Default()

	want := []string{"africa", "america", "antarctica", "arctic", "asia", "atlantic",
		"australia", "europe", "indian", "pacific", "us"}
	if diff := cmp.Diff(want, db.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}

	asia, err := db.Group("Asia")
	if err != nil {
		t.Fatalf("Group(asia) returned error: %v", err)
	}
	if len(asia) == 0 {
		t.Errorf("Group(asia) is empty")
	}
}

func TestLookupLondon(t *testing.T) {
	l, err := Default().Lookup("london")
	if err != nil {
		t.Fatalf("Lookup(london) returned error: %v", err)
	}

	if l.Name != "London" || l.Region != "England" || l.Timezone != "Europe/London" {
		t.Errorf("Lookup(london) = %+v", l)
	}
	if math.Abs(l.Latitude-51.4733) > 0.001 {
		t.Errorf("latitude = %v, want 51.4733", l.Latitude)
	}
	if math.Abs(l.Longitude-(-0.0008333)) > 0.000001 {
		t.Errorf("longitude = %v, want -0.0008333", l.Longitude)
	}
}

func TestLookupWithRegion(t *testing.T) {
	db := Default()

	for _, tt := range []struct{ key, region string }{
		{"Birmingham,England", "England"},
		{"Birmingham,USA", "USA"},
		{"birmingham, usa", "USA"},
	} {
		l, err := db.Lookup(tt.key)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", tt.key, err)
		}
		if l.Name != "Birmingham" || l.Region != tt.region {
			t.Errorf("Lookup(%q) = %s/%s, want Birmingham/%s", tt.key, l.Name, l.Region, tt.region)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	db := Default()

	for _, key := range []string{"somewhere", "London,France"} {
		if _, err := db.Lookup(key); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(%q) error = %v, want ErrNotFound", key, err)
		}
	}
	if _, err := db.Group("mars"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Group(mars) error = %v, want ErrNotFound", err)
	}
}

func TestLookupSanitizesKey(t *testing.T) {
	if got := sanitizeKey("Los Angeles"); got != "los_angeles" {
		t.Errorf("sanitizeKey(Los Angeles) = %q", got)
	}

	db := Default()
	a, err := db.Lookup("Los Angeles")
	if err != nil {
		t.Fatal(err)
	}
	b, err := db.Lookup("los_angeles")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Lookup differs by key form: %v vs %v", a, b)
	}
}

func TestAllHaveNamesAndZones(t *testing.T) {
	db := Default()
	all := db.All()
	if len(all) != db.Len() {
		t.Errorf("All() has %d entries, Len() = %d", len(all), db.Len())
	}

	for _, l := range all {
		if l.Name == "" {
			t.Errorf("location with empty name: %+v", l)
		}
		if _, err := l.Location(); err != nil {
			t.Errorf("%s: %v", l.Name, err)
		}
	}
}

func TestAddLocations(t *testing.T) {
	db := Default()
	count := db.Len()

	if err := db.AddLocations("A Place,A Region,Asia/Nicosia,35°10'N,33°25'E,162.0\n"); err != nil {
		t.Fatal(err)
	}
	if db.Len() != count+1 {
		t.Errorf("Len() = %d after adding one, want %d", db.Len(), count+1)
	}

	err := db.AddLocations(strings.Join([]string{
		"Another Place,Somewhere else,Asia/Nicosia,35°10'N,33°25'E,162.0",
		"# comment",
		"",
		"Somewhere,Secret Location,UTC,24°28'N,39°36'E",
	}, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if db.Len() != count+3 {
		t.Errorf("Len() = %d, want %d", db.Len(), count+3)
	}

	l, err := db.Lookup("Somewhere")
	if err != nil {
		t.Fatal(err)
	}
	if l.TimezoneGroup() != "utc" || math.Abs(l.Latitude-24.4667) > 0.001 || math.Abs(l.Longitude-39.6) > 0.001 {
		t.Errorf("Lookup(Somewhere) = %+v", l)
	}

	// Re-adding the same name and region replaces the entry.
	if err := db.AddLocations("A Place,A Region,Asia/Nicosia,35°N,33°E"); err != nil {
		t.Fatal(err)
	}
	if db.Len() != count+3 {
		t.Errorf("Len() = %d after replacing, want %d", db.Len(), count+3)
	}
}

func TestAddLocationsInvalid(t *testing.T) {
	for _, text := range []string{
		"Too,Few,Fields",
		"Bad Latitude,Region,UTC,i,2",
		"Bad Longitude,Region,UTC,2,i",
		",Region,UTC,2,2",
		"Bad Elevation,Region,UTC,2,2,high",
	} {
		if err := New().AddLocations(text); err == nil {
			t.Errorf("AddLocations(%q) returned no error", text)
		}
	}
}

func TestObserver(t *testing.T) {
	l, err := Default().Lookup("Denver")
	if err != nil {
		t.Fatal(err)
	}

	obs := l.Observer()
	if obs.Latitude != l.Latitude || obs.Longitude != l.Longitude {
		t.Errorf("Observer() = %+v, want %v, %v", obs, l.Latitude, l.Longitude)
	}
	if obs.Elevation != sunglide.Height(1609) {
		t.Errorf("Observer().Elevation = %v, want Height(1609)", obs.Elevation)
	}

	l.Elevation = 0
	if l.Observer().Elevation != nil {
		t.Errorf("sea-level Observer has elevation %v", l.Observer().Elevation)
	}
}

func TestLoadTOML(t *testing.T) {
	const doc = `
[[location]]
name = "Somewhere"
region = "Secret Location"
timezone = "UTC"
latitude = "24°28'N"
longitude = 39.6

[[location]]
name = "Base Camp"
region = "Nepal"
timezone = "Asia/Kathmandu"
latitude = 28
longitude = "86°51'E"
elevation = 5364.0
`
	db := New()
	n, err := db.LoadTOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadTOML returned error: %v", err)
	}
	if n != 2 || db.Len() != 2 {
		t.Errorf("LoadTOML loaded %d, Len() = %d, want 2", n, db.Len())
	}

	l, err := db.Lookup("base camp,nepal")
	if err != nil {
		t.Fatal(err)
	}
	want := LocationInfo{
		Name: "Base Camp", Region: "Nepal", Timezone: "Asia/Kathmandu",
		Latitude: 28, Longitude: 86 + 51.0/60, Elevation: 5364,
	}
	if diff := cmp.Diff(want, l, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOMLInvalid(t *testing.T) {
	for _, doc := range []string{
		`[[location]]` + "\nname = 3",
		"[[location]]\nname = \"x\"\ntimezone = \"UTC\"\nlongitude = 2",
	} {
		if _, err := New().LoadTOML(strings.NewReader(doc)); err == nil {
			t.Errorf("LoadTOML(%q) returned no error", doc)
		}
	}
}
