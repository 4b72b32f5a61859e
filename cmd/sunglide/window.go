package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunglide"
)

type windowFunc func(p *place, dir sunglide.SunDirection) (sunglide.Window, error)

var windows = map[string]windowFunc{
	"twilight": func(p *place, dir sunglide.SunDirection) (sunglide.Window, error) {
		return sunglide.Twilight(p.obs, p.date, dir, p.tz)
	},
	"golden": func(p *place, dir sunglide.SunDirection) (sunglide.Window, error) {
		return sunglide.GoldenHour(p.obs, p.date, dir, p.tz)
	},
	"blue": func(p *place, dir sunglide.SunDirection) (sunglide.Window, error) {
		return sunglide.BlueHour(p.obs, p.date, dir, p.tz)
	},
	"daylight": func(p *place, _ sunglide.SunDirection) (sunglide.Window, error) {
		return sunglide.Daylight(p.obs, p.date, p.tz)
	},
	"night": func(p *place, _ sunglide.SunDirection) (sunglide.Window, error) {
		return sunglide.Night(p.obs, p.date, p.tz)
	},
}

func windowKinds() string {
	kinds := make([]string, 0, len(windows))
	for k := range windows {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}

type windowOutput struct {
	Kind      string          `json:"kind"`
	Direction string          `json:"direction,omitempty"`
	Window    sunglide.Window `json:"window"`
	Minutes   float64         `json:"minutes"`
}

func printWindow(out windowOutput) error {
	out.Minutes = out.Window.Duration().Minutes()
	if jsonOut {
		return printJSON(out)
	}

	name := out.Kind
	if out.Direction != "" {
		name += " (" + out.Direction + ")"
	}
	fmt.Printf("%s: %s – %s (%.0f min)\n", name, clock(out.Window.Start), clock(out.Window.End), out.Minutes)
	return nil
}

var windowCmd = &cobra.Command{
	Use:   "window KIND",
	Short: "Start and end of a window: " + windowKinds(),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, ok := windows[args[0]]
		if !ok {
			return fmt.Errorf("unknown window %q (use %s)", args[0], windowKinds())
		}
		p, err := resolvePlace()
		if err != nil {
			return err
		}
		dirName, _ := cmd.Flags().GetString("direction")
		dir, err := parseDirection(dirName)
		if err != nil {
			return err
		}

		w, err := fn(p, dir)
		if err != nil {
			return err
		}

		out := windowOutput{Kind: args[0], Window: w}
		if args[0] != "daylight" && args[0] != "night" {
			out.Direction = dir.String()
		}
		return printWindow(out)
	},
}

var rahukaalamCmd = &cobra.Command{
	Use:   "rahukaalam",
	Short: "The inauspicious eighth of the day (or night)",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePlace()
		if err != nil {
			return err
		}
		night, _ := cmd.Flags().GetBool("night")

		w, err := sunglide.Rahukaalam(p.obs, p.date, !night, p.tz)
		if err != nil {
			return err
		}
		return printWindow(windowOutput{Kind: "rahukaalam", Window: w})
	},
}

func init() {
	windowCmd.Flags().String("direction", "rising", "rising (morning) or setting (evening)")
	rahukaalamCmd.Flags().Bool("night", false, "divide the night instead of the day")
	rootCmd.AddCommand(windowCmd, rahukaalamCmd)
}
