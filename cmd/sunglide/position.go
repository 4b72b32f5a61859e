package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunglide"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// parseTime accepts RFC 3339 or a local date and time in tz. An empty
// string means now.
func parseTime(s string, tz *time.Location) (time.Time, error) {
	if s == "" {
		return sunglide.Now(tz), nil
	}

	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, tz); err == nil {
			return t.In(tz), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse --time %q: %w", s, err)
}

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "The Sun's zenith, azimuth and elevation at an instant",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePlace()
		if err != nil {
			return err
		}
		timeStr, _ := cmd.Flags().GetString("time")
		t, err := parseTime(timeStr, p.tz)
		if err != nil {
			return err
		}
		noRefraction, _ := cmd.Flags().GetBool("no-refraction")

		zenith, azimuth := sunglide.ZenithAndAzimuth(p.obs, t, !noRefraction)

		if jsonOut {
			return printJSON(map[string]any{
				"time":       t,
				"zenith":     zenith,
				"azimuth":    azimuth,
				"elevation":  90 - zenith,
				"refraction": !noRefraction,
			})
		}
		fmt.Printf("Sun position at %s\n", t.Format(time.RFC3339))
		fmt.Printf("  Zenith    : %.3f°\n", zenith)
		fmt.Printf("  Elevation : %.3f°\n", 90-zenith)
		fmt.Printf("  Azimuth   : %.3f°\n", azimuth)
		return nil
	},
}

func init() {
	positionCmd.Flags().String("time", "", "time in RFC3339 or 'YYYY-MM-DDTHH:MM' (default now)")
	positionCmd.Flags().Bool("no-refraction", false, "geometric position without atmospheric refraction")
	rootCmd.AddCommand(positionCmd)
}
