package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSeriesSummary(t *testing.T) {
	var s series
	for _, v := range []float64{3, 1, math.NaN(), 4, 2} {
		s.add(v)
	}

	sum := s.summary()
	if sum.Count != 4 || sum.Min != 1 || sum.Max != 4 || sum.Mean != 2.5 {
		t.Errorf("summary = %+v", sum)
	}
	if math.Abs(sum.StdDev-1.290994) > 1e-6 {
		t.Errorf("StdDev = %v, want 1.290994", sum.StdDev)
	}
	if sum.P95 != 4 {
		t.Errorf("P95 = %v, want 4", sum.P95)
	}

	var empty series
	if !math.IsNaN(empty.summary().Mean) {
		t.Errorf("empty mean = %v, want NaN", empty.summary().Mean)
	}
}

func TestParseRefRow(t *testing.T) {
	tests := []struct {
		row       []string
		rise, set time.Time
		wantErr   bool
	}{
		{
			row:  []string{"2015-12-01", "07:43", "15:55:30"},
			rise: time.Date(2015, 12, 1, 7, 43, 0, 0, time.UTC),
			set:  time.Date(2015, 12, 1, 15, 55, 30, 0, time.UTC),
		},
		{
			row:  []string{"2015-12-01", "--", "15:55"},
			set:  time.Date(2015, 12, 1, 15, 55, 0, 0, time.UTC),
		},
		{row: []string{"2015-12-01", "07:43"}, wantErr: true},
		{row: []string{"1/12/2015", "07:43", "15:55"}, wantErr: true},
		{row: []string{"2015-12-01", "7h43", "15:55"}, wantErr: true},
	}

	for _, tt := range tests {
		day, err := parseRefRow(tt.row, time.UTC)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRefRow(%q) returned no error", tt.row)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRefRow(%q) returned error: %v", tt.row, err)
			continue
		}
		if !day.Rise.Equal(tt.rise) || !day.Set.Equal(tt.set) {
			t.Errorf("parseRefRow(%q) = %v / %v", tt.row, day.Rise, day.Set)
		}
	}
}

func TestYearDays(t *testing.T) {
	if n := len(yearDays(2024, time.UTC)); n != 366 {
		t.Errorf("2024 has %d days, want 366", n)
	}
	if n := len(yearDays(2015, time.UTC)); n != 365 {
		t.Errorf("2015 has %d days, want 365", n)
	}
}

func TestRunCSV(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "london.csv")
	data := strings.Join([]string{
		"date,rise,set",
		"2015-12-01,07:43:38,15:54:52",
		"2015-12-02,07:45:02,15:54:15",
		"not a date,07:00,16:00",
	}, "\n")
	if err := os.WriteFile(ref, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	outCSV := filepath.Join(dir, "errors.csv")

	var buf bytes.Buffer
	p, err := run(options{lat: "51.50853", lon: "-0.12574", refCSV: ref, outCSV: outCSV}, &buf)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if p.skipped != 1 || p.rise.count() != 2 {
		t.Errorf("skipped %d, counted %d rises", p.skipped, p.rise.count())
	}
	if max := p.rise.summary().Max; max > 0.5 {
		t.Errorf("max rise error = %.2f min", max)
	}
	if !strings.Contains(buf.String(), "Reference: csv") {
		t.Errorf("summary missing reference line:\n%s", buf.String())
	}

	f, err := os.Open(outCSV)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][0] != "date" {
		t.Errorf("outcsv rows = %v", rows)
	}
}

func TestRunGoSunrise(t *testing.T) {
	var buf bytes.Buffer
	p, err := run(options{lat: "51.50853", lon: "-0.12574", year: 2015}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if p.rise.count() != 365 || p.set.count() != 365 {
		t.Errorf("counted %d rises and %d sets, want 365", p.rise.count(), p.set.count())
	}
	if mean := p.rise.summary().Mean; mean > 5 {
		t.Errorf("mean rise error against go-sunrise = %.2f min", mean)
	}
}

func TestRunBisectTwilight(t *testing.T) {
	var buf bytes.Buffer
	p, err := run(options{lat: "51.50853", lon: "-0.12574", year: 2015, reference: "bisect", twilight: "nautical"}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if p.mode != "SUN (NAUTICAL TWILIGHT)" {
		t.Errorf("mode = %q", p.mode)
	}
	if p.rise.count() == 0 {
		t.Fatal("no days profiled")
	}
	if mean := p.rise.summary().Mean; mean > 3 {
		t.Errorf("mean dawn error against elevation search = %.2f min", mean)
	}
}

func TestRunErrors(t *testing.T) {
	for name, o := range map[string]options{
		"no place":           {},
		"missing refcsv":     {lat: "1", lon: "1", reference: "csv"},
		"unknown reference":  {lat: "1", lon: "1", reference: "almanac"},
		"gosunrise twilight": {lat: "1", lon: "1", reference: "gosunrise", twilight: "civil"},
		"bad twilight":       {lat: "1", lon: "1", twilight: "dim"},
		"unknown location":   {location: "Atlantis"},
	} {
		if _, err := run(o, &bytes.Buffer{}); err == nil {
			t.Errorf("%s: run returned no error", name)
		}
	}
}
