package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunglide/geocoder"
	"github.com/thurmanmarka/sunglide/internal/config"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [NAME]",
	Short: "Find a place in the location database",
	Long: `Look up a place by "name" or "name,region". With --group, list the places
in a time zone group; with no arguments, list the groups.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := cfg.Geocoder()
		if err != nil {
			return err
		}
		group, _ := cmd.Flags().GetString("group")

		switch {
		case len(args) == 1:
			l, err := db.Lookup(args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(l)
			}
			fmt.Println(l)
		case group != "":
			locs, err := db.Group(group)
			if err != nil {
				return err
			}
			return printLocations(locs)
		default:
			if jsonOut {
				return printJSON(db.Groups())
			}
			for _, g := range db.Groups() {
				locs, _ := db.Group(g)
				fmt.Printf("%-12s %3d places\n", g, len(locs))
			}
		}
		return nil
	},
}

func printLocations(locs []geocoder.LocationInfo) error {
	if jsonOut {
		return printJSON(locs)
	}
	for _, l := range locs {
		fmt.Println(l)
	}
	return nil
}

func init() {
	lookupCmd.Flags().String("group", "", "list the places of a time zone group, e.g. europe")
	rootCmd.AddCommand(lookupCmd)
}
