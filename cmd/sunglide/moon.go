package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/internal/config"
)

// zoneOnly loads the configured time zone without requiring a place.
func zoneOnly() (*time.Location, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", cfg.Timezone, err)
	}
	return loc, nil
}

type phaseOutput struct {
	Phase     float64            `json:"phase"`
	PhaseName string             `json:"phase_name"`
	State     sunglide.MoonState `json:"state"`
}

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Moon phase and illumination",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := zoneOnly()
		if err != nil {
			return err
		}
		timeStr, _ := cmd.Flags().GetString("time")
		if timeStr == "" && dateArg != "" {
			timeStr = dateArg + "T12:00"
		}
		t, err := parseTime(timeStr, loc)
		if err != nil {
			return err
		}

		out := phaseOutput{Phase: sunglide.MoonPhase(t), State: sunglide.MoonAt(t)}
		out.PhaseName = sunglide.MoonPhaseName(out.Phase)

		if jsonOut {
			return printJSON(out)
		}

		m := out.State
		fmt.Printf("Moon phase at %s (%s)\n", m.Time.Format(time.RFC3339), loc.String())
		fmt.Printf("  Phase day  : %.2f (%s)\n", out.Phase, out.PhaseName)
		fmt.Printf("  Name       : %s\n", m.Name)
		fmt.Printf("  Fraction   : %.3f (%.1f%% illuminated)\n", m.Fraction, m.Fraction*100)
		fmt.Printf("  Elongation : %.2f°\n", m.Elongation)
		fmt.Printf("  Distance   : %.0f km\n", m.DistanceKm)
		if m.Waxing {
			fmt.Printf("  Trend      : Waxing (illumination increasing)\n")
		} else {
			fmt.Printf("  Trend      : Waning (illumination decreasing)\n")
		}
		return nil
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Equinox and solstice instants of a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := zoneOnly()
		if err != nil {
			return err
		}
		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			year = sunglide.Today(loc).Year()
		}

		s := sunglide.SeasonsOf(year, loc)
		if jsonOut {
			return printJSON(s)
		}
		fmt.Printf("Seasons of %d (%s)\n", year, loc)
		fmt.Printf("  March equinox     : %s\n", s.MarchEquinox.Format(time.DateTime))
		fmt.Printf("  June solstice     : %s\n", s.JuneSolstice.Format(time.DateTime))
		fmt.Printf("  September equinox : %s\n", s.SeptemberEquinox.Format(time.DateTime))
		fmt.Printf("  December solstice : %s\n", s.DecemberSolstice.Format(time.DateTime))
		return nil
	},
}

func init() {
	phaseCmd.Flags().String("time", "", "time in RFC3339 or 'YYYY-MM-DDTHH:MM' (default now)")
	seasonsCmd.Flags().Int("year", 0, "year (default this year)")
	rootCmd.AddCommand(phaseCmd, seasonsCmd)
}
