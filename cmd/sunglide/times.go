package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunglide"
)

type timesOutput struct {
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Date       string            `json:"date"`
	Timezone   string            `json:"timezone"`
	Depression string            `json:"depression"`
	Times      sunglide.SunTimes `json:"times"`
	Midnight   time.Time         `json:"midnight"`
	Daylight   float64           `json:"daylight_hours"`
}

var timesCmd = &cobra.Command{
	Use:   "times",
	Short: "Dawn, sunrise, noon, sunset, dusk and midnight",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePlace()
		if err != nil {
			return err
		}
		dep, err := p.cfg.DepressionValue()
		if err != nil {
			return err
		}

		st, err := sunglide.Sun(p.obs, p.date, dep, p.tz)
		if err != nil {
			var ve *sunglide.ValueError
			if errors.As(err, &ve) {
				return fmt.Errorf("%s: %w", p.header(), err)
			}
			return err
		}

		out := timesOutput{
			Latitude:   p.obs.Latitude,
			Longitude:  p.obs.Longitude,
			Date:       p.date.Format(time.DateOnly),
			Timezone:   p.tz.String(),
			Depression: dep.String(),
			Times:      st,
			Midnight:   sunglide.Midnight(p.obs, p.date, p.tz),
		}
		out.Daylight, _ = sunglide.DaylightHours(p.obs, p.date)

		if jsonOut {
			return printJSON(out)
		}

		fmt.Printf("Sun times for %s\n\n", p.header())
		fmt.Printf("Dawn (%s): %s\n", dep, clock(st.Dawn))
		fmt.Printf("Sunrise:       %s\n", clock(st.Sunrise))
		fmt.Printf("Noon:          %s\n", clock(st.Noon))
		fmt.Printf("Sunset:        %s\n", clock(st.Sunset))
		fmt.Printf("Dusk (%s): %s\n", dep, clock(st.Dusk))
		fmt.Printf("Midnight:      %s\n", out.Midnight.Format(time.DateTime))
		fmt.Printf("Daylight:      %.2f h\n", out.Daylight)
		return nil
	},
}

var elevationCmd = &cobra.Command{
	Use:   "elevation DEGREES",
	Short: "Time the Sun reaches an elevation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePlace()
		if err != nil {
			return err
		}
		elevation, err := sunglide.ParseDMS(args[0], 0)
		if err != nil {
			return err
		}
		dirName, _ := cmd.Flags().GetString("direction")
		dir, err := parseDirection(dirName)
		if err != nil {
			return err
		}

		t, err := sunglide.TimeAtElevation(p.obs, p.date, elevation, dir, p.tz)
		if err != nil {
			return err
		}

		if jsonOut {
			return printJSON(map[string]any{
				"elevation": elevation,
				"direction": dir.String(),
				"time":      t,
			})
		}
		fmt.Printf("Sun at %g° (%s): %s\n", elevation, dir, t.Format(time.RFC3339))
		return nil
	},
}

func init() {
	elevationCmd.Flags().String("direction", "rising", "rising or setting")
	rootCmd.AddCommand(timesCmd, elevationCmd)
}
