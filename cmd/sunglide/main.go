// Command sunglide prints solar event times, windows and positions for a
// place, and serves them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thurmanmarka/sunglide/internal/config"
	"github.com/thurmanmarka/sunglide/internal/log"
)

var (
	cfgFile string
	dateArg string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "sunglide",
	Short: "Sun and moon times for any place on Earth",
	Long: `sunglide computes dawn, sunrise, noon, sunset and dusk, twilight, golden
and blue hours, Rahukaalam, the Sun's position and the Moon's phase.

A place is given by name (--location) or by coordinates (--lat, --lon).
Settings may also come from .sunglide.toml or SUNGLIDE_* variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgFile); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return log.Init(log.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default .sunglide.toml)")
	pf.StringVar(&dateArg, "date", "", "date as YYYY-MM-DD (default today in the time zone)")
	pf.BoolVar(&jsonOut, "json", false, "output result as JSON")

	pf.StringP("location", "l", "", `place name, e.g. "London" or "Birmingham,USA"`)
	pf.String("lat", "", `latitude, decimal or DMS (e.g. 51°30'N)`)
	pf.String("lon", "", `longitude, decimal or DMS (e.g. 0°07'W)`)
	pf.Float64("elevation", 0, "observer height above sea level in metres")
	pf.String("tz", "", "IANA time zone name (default the location's, or UTC)")
	pf.String("depression", "civil", "dawn/dusk depression: civil, nautical, astronomical or degrees")
	pf.String("locations-file", "", "TOML file with extra locations")
	pf.Bool("debug", false, "debug logging")
	pf.String("log-file", "", "also write JSON logs to this file")

	for key, flag := range map[string]string{
		"location":       "location",
		"latitude":       "lat",
		"longitude":      "lon",
		"elevation":      "elevation",
		"timezone":       "tz",
		"depression":     "depression",
		"locations_file": "locations-file",
		"log.debug":      "debug",
		"log.file":       "log-file",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
