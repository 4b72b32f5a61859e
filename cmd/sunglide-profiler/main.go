// Command sunglide-profiler measures sunglide's event times against
// reference data: a CSV of published times, the go-sunrise library, or a
// direct search of the computed solar elevation.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/geocoder"
	"github.com/thurmanmarka/sunglide/internal/log"
)

type options struct {
	location  string
	lat, lon  string
	tz        string
	year      int
	refCSV    string
	reference string
	twilight  string
	outCSV    string
	verbose   bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "sunglide-profiler",
	Short: "Profile sunglide event times against reference data",
	Long: `sunglide-profiler compares sunglide's sunrise and sunset (or, with
--twilight, dawn and dusk) against a reference and prints error statistics
in minutes.

References:
  csv        published times from --refcsv (date,rise,set in local time)
  gosunrise  the github.com/nathan-osman/go-sunrise library, for --year
  bisect     a direct search of sunglide's own elevation curve, for --year`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(log.Options{Debug: opts.verbose}); err != nil {
			return err
		}
		defer log.Sync()
		_, err := run(opts, os.Stdout)
		return err
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.location, "location", "l", "", "place name from the location database")
	f.StringVar(&opts.lat, "lat", "", "latitude in degrees (north positive)")
	f.StringVar(&opts.lon, "lon", "", "longitude in degrees (east positive, west negative)")
	f.StringVar(&opts.tz, "tz", "", "IANA time zone name (default the location's, or UTC)")
	f.IntVar(&opts.year, "year", 0, "year to profile for the gosunrise and bisect references")
	f.StringVar(&opts.refCSV, "refcsv", "", "path to reference ephemeris CSV file (date,rise,set)")
	f.StringVar(&opts.reference, "reference", "", "csv, gosunrise or bisect (default csv with --refcsv, else gosunrise)")
	f.StringVar(&opts.twilight, "twilight", "", "profile dawn and dusk: civil, nautical, astronomical or degrees")
	f.StringVar(&opts.outCSV, "outcsv", "", "optional path to write per-row error CSV")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print per-day errors instead of only summary")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolve(o options) (sunglide.Observer, *time.Location, error) {
	var (
		obs    sunglide.Observer
		tzName = o.tz
	)

	if o.location != "" {
		l, err := geocoder.Default().Lookup(o.location)
		if err != nil {
			return obs, nil, err
		}
		obs = l.Observer()
		if tzName == "" {
			tzName = l.Timezone
		}
	} else {
		lat, err := sunglide.ParseDMS(o.lat, 90)
		if err != nil {
			return obs, nil, fmt.Errorf("invalid --lat: %w", err)
		}
		lon, err := sunglide.ParseDMS(o.lon, 180)
		if err != nil {
			return obs, nil, fmt.Errorf("invalid --lon: %w", err)
		}
		obs = sunglide.NewObserver(lat, lon)
	}

	if obs.Latitude == 0 && obs.Longitude == 0 {
		log.Warnw("lat=0 lon=0 (Gulf of Guinea); did you mean to set --lat/--lon?")
	}

	loc := time.UTC
	if tzName != "" {
		var err error
		if loc, err = time.LoadLocation(tzName); err != nil {
			return obs, nil, fmt.Errorf("failed to load timezone %q: %w", tzName, err)
		}
	}
	return obs, loc, nil
}

// profile holds the results of a run.
type profile struct {
	mode       string
	rise, set  series
	riseSigned series
	setSigned  series
	skipped    int
	rows       int
}

func run(o options, w io.Writer) (*profile, error) {
	obs, loc, err := resolve(o)
	if err != nil {
		return nil, err
	}

	var dep sunglide.Depression
	twilight := o.twilight != ""
	if twilight {
		if dep, err = sunglide.ParseDepression(strings.ToLower(o.twilight)); err != nil {
			return nil, err
		}
	}

	reference := o.reference
	if reference == "" {
		reference = "gosunrise"
		if o.refCSV != "" {
			reference = "csv"
		}
	}
	if reference != "csv" && o.year == 0 {
		o.year = sunglide.Today(loc).Year()
	}

	var (
		days    []refDay
		skipped int
	)
	switch reference {
	case "csv":
		if o.refCSV == "" {
			return nil, fmt.Errorf("missing --refcsv (path to reference CSV)")
		}
		if days, skipped, err = csvReference(o.refCSV, loc); err != nil {
			return nil, err
		}
	case "gosunrise":
		if twilight {
			return nil, fmt.Errorf("the gosunrise reference has no twilight; use --reference bisect")
		}
		days = goSunriseReference(obs, o.year, loc)
	case "bisect":
		depression := 0.0
		if twilight {
			depression = dep.Degrees()
		}
		days = bisectReference(obs, o.year, loc, depression)
	default:
		return nil, fmt.Errorf("unknown reference %q (use csv, gosunrise or bisect)", reference)
	}

	p := &profile{mode: "SUN", skipped: skipped, rows: len(days) + skipped}
	if twilight {
		p.mode = fmt.Sprintf("SUN (%s TWILIGHT)", strings.ToUpper(dep.String()))
	}

	var out *csv.Writer
	if o.outCSV != "" {
		f, err := os.Create(o.outCSV)
		if err != nil {
			return nil, fmt.Errorf("failed to create outcsv %q: %w", o.outCSV, err)
		}
		defer f.Close()
		out = csv.NewWriter(f)
		if err := out.Write([]string{
			"date", "mode", "rise_err", "set_err", "rise_signed", "set_signed",
			"moon_fraction", "moon_name",
		}); err != nil {
			return nil, fmt.Errorf("failed to write outcsv header: %w", err)
		}
	}

	for _, day := range days {
		gotRise, gotSet, err := computed(obs, day.Date, loc, twilight, dep)
		if err != nil {
			log.Warnw("skipping day", "date", day.Date.Format(time.DateOnly), "error", err)
			p.skipped++
			continue
		}

		riseSigned := diffMinutesSigned(gotRise, day.Rise)
		setSigned := diffMinutesSigned(gotSet, day.Set)
		p.rise.add(math.Abs(riseSigned))
		p.set.add(math.Abs(setSigned))
		p.riseSigned.add(riseSigned)
		p.setSigned.add(setSigned)

		if o.verbose {
			fmt.Fprintf(w, "%s %s: rise err=%.2f min (got=%s ref=%s), set err=%.2f min (got=%s ref=%s)\n",
				day.Date.Format(time.DateOnly), p.mode,
				riseSigned, gotRise.Format("15:04"), day.Rise.Format("15:04"),
				setSigned, gotSet.Format("15:04"), day.Set.Format("15:04"))
		}

		if out != nil {
			y, m, d := day.Date.Date()
			moon := sunglide.MoonAt(time.Date(y, m, d, 12, 0, 0, 0, loc))
			if err := out.Write([]string{
				day.Date.Format(time.DateOnly),
				p.mode,
				fmt.Sprintf("%.6f", math.Abs(riseSigned)),
				fmt.Sprintf("%.6f", math.Abs(setSigned)),
				fmt.Sprintf("%.6f", riseSigned),
				fmt.Sprintf("%.6f", setSigned),
				fmt.Sprintf("%.6f", moon.Fraction),
				moon.Name,
			}); err != nil {
				return nil, fmt.Errorf("failed to write outcsv: %w", err)
			}
		}
	}

	if out != nil {
		out.Flush()
		if err := out.Error(); err != nil {
			return nil, fmt.Errorf("failed to write outcsv: %w", err)
		}
	}

	p.write(w, reference, obs, loc)
	return p, nil
}

// computed returns sunglide's morning and evening events for date. A
// ValueError on one side leaves that side zero.
func computed(obs sunglide.Observer, date time.Time, loc *time.Location, twilight bool, dep sunglide.Depression) (rise, set time.Time, err error) {
	var errRise, errSet error
	if twilight {
		rise, errRise = sunglide.Dawn(obs, date, dep, loc)
		set, errSet = sunglide.Dusk(obs, date, dep, loc)
	} else {
		rise, errRise = sunglide.Sunrise(obs, date, loc)
		set, errSet = sunglide.Sunset(obs, date, loc)
	}
	if errRise != nil && errSet != nil {
		return time.Time{}, time.Time{}, errRise
	}
	return rise, set, nil
}

func diffMinutesSigned(a, b time.Time) float64 {
	// If either time is zero, treat as "no data".
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}

func (p *profile) write(w io.Writer, reference string, obs sunglide.Observer, loc *time.Location) {
	fmt.Fprintln(w, "=== sunglide profiler summary ===")
	fmt.Fprintf(w, "Mode:      %s\n", p.mode)
	fmt.Fprintf(w, "Reference: %s\n", reference)
	fmt.Fprintf(w, "Lat/Lon:   %.4f / %.4f\n", obs.Latitude, obs.Longitude)
	fmt.Fprintf(w, "TZ:        %s\n", loc.String())
	fmt.Fprintf(w, "Rows:      %d (processed), %d skipped\n", p.rows-p.skipped, p.skipped)

	if p.rise.count() == 0 && p.set.count() == 0 {
		fmt.Fprintln(w, "No valid rows to compute stats.")
		return
	}

	p.rise.summary().write(w, "Rise error (minutes)")
	p.set.summary().write(w, "Set error (minutes)")
	p.riseSigned.summary().write(w, "Rise signed error (minutes, ours - ref)")
	p.setSigned.summary().write(w, "Set signed error (minutes, ours - ref)")
}
