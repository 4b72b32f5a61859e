package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/geocoder"
	"github.com/thurmanmarka/sunglide/internal/config"
	"github.com/thurmanmarka/sunglide/internal/log"
)

// place is the resolved observer, zone and date of a command.
type place struct {
	cfg  config.Config
	db   *geocoder.DB
	obs  sunglide.Observer
	tz   *time.Location
	date time.Time
}

func resolvePlace() (*place, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	db, err := cfg.Geocoder()
	if err != nil {
		return nil, err
	}

	obs, tz, err := cfg.Observer(db)
	if err != nil {
		return nil, err
	}
	if obs.Latitude == 0 && obs.Longitude == 0 {
		log.Warnw("lat=0 lon=0 (Gulf of Guinea); use --location or --lat and --lon to set a real place")
	}

	date := sunglide.Today(tz)
	if dateArg != "" {
		if date, err = time.ParseInLocation(time.DateOnly, dateArg, tz); err != nil {
			return nil, fmt.Errorf("invalid --date %q: %w", dateArg, err)
		}
	}

	log.Debugw("resolved place",
		"latitude", obs.Latitude,
		"longitude", obs.Longitude,
		"timezone", tz.String(),
		"date", date.Format(time.DateOnly),
	)
	return &place{cfg: cfg, db: db, obs: obs, tz: tz, date: date}, nil
}

func (p *place) header() string {
	return fmt.Sprintf("lat=%.6f lon=%.6f, %s (%s)",
		p.obs.Latitude, p.obs.Longitude, p.date.Format(time.DateOnly), p.tz)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func clock(t time.Time) string {
	return t.Format("15:04:05")
}

func parseDirection(s string) (sunglide.SunDirection, error) {
	switch s {
	case "rising", "morning":
		return sunglide.Rising, nil
	case "setting", "evening":
		return sunglide.Setting, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (use rising or setting)", s)
	}
}
