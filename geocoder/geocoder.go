// Package geocoder maps place names to coordinates and time zones.
//
// Locations are grouped by the first element of their IANA time zone
// ("europe", "asia", "us", ...). Lookups are case-insensitive and treat
// spaces as underscores, so "Los Angeles" and "los_angeles" are the same
// key.
package geocoder

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/thurmanmarka/sunglide"
)

//go:embed locations.csv
var defaultLocations string

// ErrNotFound is returned when a name is not in the database.
var ErrNotFound = errors.New("location not found")

// LocationInfo describes a named place.
type LocationInfo struct {
	Name      string  `json:"name" msgpack:"name"`
	Region    string  `json:"region" msgpack:"region"`
	Timezone  string  `json:"timezone" msgpack:"timezone"`
	Latitude  float64 `json:"latitude" msgpack:"latitude"`
	Longitude float64 `json:"longitude" msgpack:"longitude"`
	Elevation float64 `json:"elevation,omitempty" msgpack:"elevation,omitempty"` // metres
}

// Observer returns an observer at the location.
func (l LocationInfo) Observer() sunglide.Observer {
	obs := sunglide.NewObserver(l.Latitude, l.Longitude)
	if l.Elevation > 0 {
		obs.Elevation = sunglide.Height(l.Elevation)
	}
	return obs
}

// Location loads the location's time zone.
func (l LocationInfo) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("location %s: %w", l.Name, err)
	}
	return loc, nil
}

// TimezoneGroup returns the group the location is filed under.
func (l LocationInfo) TimezoneGroup() string {
	group, _, _ := strings.Cut(l.Timezone, "/")
	return sanitizeKey(group)
}

func (l LocationInfo) String() string {
	return fmt.Sprintf("%s/%s, tz=%s, lat=%.2f, lon=%.2f", l.Name, l.Region, l.Timezone, l.Latitude, l.Longitude)
}

// DB is a location database, safe for concurrent use.
type DB struct {
	mu     sync.RWMutex
	groups map[string]map[string][]LocationInfo
}

// New returns an empty database.
func New() *DB {
	return &DB{groups: make(map[string]map[string][]LocationInfo)}
}

// Default returns a database loaded with the built-in locations.
func Default() *DB {
	db := New()
	if err := db.AddLocations(defaultLocations); err != nil {
		panic(fmt.Sprintf("geocoder: built-in locations: %v", err))
	}
	return db
}

func sanitizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

// Add inserts a location. A location with the same name and region
// replaces the existing entry.
func (db *DB) Add(l LocationInfo) {
	db.mu.Lock()
	defer db.mu.Unlock()

	group := l.TimezoneGroup()
	if db.groups[group] == nil {
		db.groups[group] = make(map[string][]LocationInfo)
	}

	key := sanitizeKey(l.Name)
	entries := db.groups[group][key]
	for i, e := range entries {
		if sanitizeKey(e.Region) == sanitizeKey(l.Region) {
			entries[i] = l
			return
		}
	}
	db.groups[group][key] = append(entries, l)
}

// AddLocations parses lines of the form
//
//	name,region,timezone,latitude,longitude[,elevation]
//
// and adds each to the database. Latitude and longitude may be decimal
// degrees or degrees°minutes'seconds"[NSEW]. Blank lines and lines
// starting with # are ignored.
func (db *DB) AddLocations(text string) error {
	r := csv.NewReader(strings.NewReader(text))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse locations: %w", err)
		}

		l, err := parseRecord(rec)
		if err != nil {
			line, _ := r.FieldPos(0)
			return fmt.Errorf("parse locations: line %d: %w", line, err)
		}
		db.Add(l)
	}
}

func parseRecord(rec []string) (LocationInfo, error) {
	if len(rec) < 5 {
		return LocationInfo{}, fmt.Errorf("expected at least 5 fields, got %d", len(rec))
	}
	return newLocationInfo(rec[0], rec[1], rec[2], rec[3], rec[4], field(rec, 5))
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func newLocationInfo(name, region, tz, lat, lon, elevation string) (LocationInfo, error) {
	l := LocationInfo{
		Name:     strings.TrimSpace(name),
		Region:   strings.TrimSpace(region),
		Timezone: strings.TrimSpace(tz),
	}
	if l.Name == "" {
		return LocationInfo{}, errors.New("missing name")
	}
	if l.Timezone == "" {
		return LocationInfo{}, fmt.Errorf("%s: missing timezone", l.Name)
	}

	var err error
	if l.Latitude, err = sunglide.ParseDMS(lat, 90); err != nil {
		return LocationInfo{}, fmt.Errorf("%s: latitude: %w", l.Name, err)
	}
	if l.Longitude, err = sunglide.ParseDMS(lon, 180); err != nil {
		return LocationInfo{}, fmt.Errorf("%s: longitude: %w", l.Name, err)
	}
	if e := strings.TrimSpace(elevation); e != "" {
		if l.Elevation, err = strconv.ParseFloat(e, 64); err != nil {
			return LocationInfo{}, fmt.Errorf("%s: elevation: %w", l.Name, err)
		}
	}
	return l, nil
}

// Lookup finds a location by "name" or "name,region". Without a region the
// first match is returned.
func (db *DB) Lookup(key string) (LocationInfo, error) {
	name, region, hasRegion := strings.Cut(key, ",")
	name, region = sanitizeKey(name), sanitizeKey(region)

	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, group := range db.sortedGroups() {
		for _, l := range db.groups[group][name] {
			if !hasRegion || sanitizeKey(l.Region) == region {
				return l, nil
			}
		}
	}
	return LocationInfo{}, fmt.Errorf("%w: %q", ErrNotFound, key)
}

// Group returns the locations in a time-zone group, sorted by name.
func (db *DB) Group(name string) ([]LocationInfo, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	g, ok := db.groups[sanitizeKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: group %q", ErrNotFound, name)
	}
	return flatten(g), nil
}

// Groups returns the group names, sorted.
func (db *DB) Groups() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.sortedGroups()
}

// All returns every location, ordered by group then name.
func (db *DB) All() []LocationInfo {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var all []LocationInfo
	for _, group := range db.sortedGroups() {
		all = append(all, flatten(db.groups[group])...)
	}
	return all
}

// Len returns the number of locations.
func (db *DB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	n := 0
	for _, g := range db.groups {
		for _, entries := range g {
			n += len(entries)
		}
	}
	return n
}

// sortedGroups must be called with db.mu held.
func (db *DB) sortedGroups() []string {
	names := make([]string, 0, len(db.groups))
	for name := range db.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func flatten(g map[string][]LocationInfo) []LocationInfo {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []LocationInfo
	for _, k := range keys {
		out = append(out, g[k]...)
	}
	return out
}
