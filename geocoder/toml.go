package geocoder

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// tomlFile is the layout of a locations file:
//
//	[[location]]
//	name = "Somewhere"
//	region = "Secret Location"
//	timezone = "UTC"
//	latitude = "24°28'N"
//	longitude = 39.6
//	elevation = 12.0
type tomlFile struct {
	Location []tomlLocation `toml:"location"`
}

type tomlLocation struct {
	Name      string  `toml:"name"`
	Region    string  `toml:"region"`
	Timezone  string  `toml:"timezone"`
	Latitude  any     `toml:"latitude"`
	Longitude any     `toml:"longitude"`
	Elevation float64 `toml:"elevation"`
}

// LoadTOML reads locations from a TOML document and adds them to the
// database. Latitude and longitude may be numbers or DMS strings.
func (db *DB) LoadTOML(r io.Reader) (int, error) {
	var f tomlFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return 0, fmt.Errorf("decode locations: %w", err)
	}

	locs := make([]LocationInfo, 0, len(f.Location))
	for i, tl := range f.Location {
		l, err := newLocationInfo(tl.Name, tl.Region, tl.Timezone,
			fmt.Sprint(tl.Latitude), fmt.Sprint(tl.Longitude), "")
		if err != nil {
			return 0, fmt.Errorf("location %d: %w", i+1, err)
		}
		l.Elevation = tl.Elevation
		locs = append(locs, l)
	}

	for _, l := range locs {
		db.Add(l)
	}
	return len(locs), nil
}
