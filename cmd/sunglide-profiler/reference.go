package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/internal/log"
	"github.com/thurmanmarka/sunglide/internal/solver"
)

// refDay is one day of reference data. Rise and Set hold the morning and
// evening events being profiled; a zero time means no data.
type refDay struct {
	Date time.Time
	Rise time.Time
	Set  time.Time
}

// CSV format:
//
//	date,rise,set
//	2025-01-01,07:32,17:12
//	2025-01-02,07:32,17:13
//
// date is YYYY-MM-DD; rise and set are local HH:MM or HH:MM:SS in loc.
func csvReference(path string, loc *time.Location) ([]refDay, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open refcsv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable, we validate
	r.Comment = '#'

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("empty CSV file %q", path)
	}

	// If first row looks like a header, skip it.
	startIdx := 0
	if strings.EqualFold(strings.TrimSpace(records[0][0]), "date") {
		startIdx = 1
	}

	var (
		days    []refDay
		skipped int
	)
	for i := startIdx; i < len(records); i++ {
		day, err := parseRefRow(records[i], loc)
		if err != nil {
			log.Warnw("skipping reference row", "row", i+1, "error", err)
			skipped++
			continue
		}
		days = append(days, day)
	}
	return days, skipped, nil
}

func parseRefRow(row []string, loc *time.Location) (refDay, error) {
	if len(row) < 3 {
		return refDay{}, fmt.Errorf("expected at least 3 columns (date,rise,set), got %d", len(row))
	}

	dateStr := strings.TrimSpace(row[0])
	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return refDay{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	day := refDay{Date: date}
	if day.Rise, err = parseLocalTime(date, strings.TrimSpace(row[1])); err != nil {
		return refDay{}, fmt.Errorf("invalid rise time %q: %w", row[1], err)
	}
	if day.Set, err = parseLocalTime(date, strings.TrimSpace(row[2])); err != nil {
		return refDay{}, fmt.Errorf("invalid set time %q: %w", row[2], err)
	}
	return day, nil
}

// parseLocalTime combines a clock time with date. An empty string or "--"
// means the event does not occur and yields the zero time.
func parseLocalTime(date time.Time, hhmm string) (time.Time, error) {
	if hhmm == "" || hhmm == "--" {
		return time.Time{}, nil
	}

	layout := "15:04"
	if strings.Count(hhmm, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.Parse(layout, hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, date.Location()), nil
}

// yearDays returns midnight of every day of year in loc.
func yearDays(year int, loc *time.Location) []time.Time {
	var days []time.Time
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, loc); d.Year() == year; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// goSunriseReference takes sunrise and sunset from the go-sunrise
// library. It has no twilight support.
func goSunriseReference(obs sunglide.Observer, year int, loc *time.Location) []refDay {
	var out []refDay
	for _, d := range yearDays(year, loc) {
		rise, set := sunrise.SunriseSunset(obs.Latitude, obs.Longitude, d.Year(), d.Month(), d.Day())
		out = append(out, refDay{Date: d, Rise: rise.In(loc), Set: set.In(loc)})
	}
	return out
}

// bisectReference finds the events by searching the Sun's computed
// elevation for the crossing, independently of the hour-angle solution.
// depression is zero for sunrise and sunset.
func bisectReference(obs sunglide.Observer, year int, loc *time.Location, depression float64) []refDay {
	zenith := 90 + sunglide.SunApparentRadius
	refraction := true
	if depression > 0 {
		zenith, refraction = 90+depression, false
	}
	site := solver.Site{Latitude: obs.Latitude, Longitude: obs.Longitude}

	var out []refDay
	for _, d := range yearDays(year, loc) {
		y, m, dd := d.Date()
		day := refDay{Date: d}
		if rise, err := solver.SearchTransit(site, y, m, dd, zenith, solver.Rising, refraction); err == nil {
			day.Rise = rise.In(loc)
		}
		if set, err := solver.SearchTransit(site, y, m, dd, zenith, solver.Setting, refraction); err == nil {
			day.Set = set.In(loc)
		}
		out = append(out, day)
	}
	return out
}
