package main

import (
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thurmanmarka/sunglide/geocoder"
	"github.com/thurmanmarka/sunglide/internal/api"
	"github.com/thurmanmarka/sunglide/internal/config"
	"github.com/thurmanmarka/sunglide/internal/log"
)

// apiDefaults turns the configured place, if any, into server defaults.
func apiDefaults(cfg config.Config, db *geocoder.DB) (api.Defaults, error) {
	var d api.Defaults

	dep, err := cfg.DepressionValue()
	if err != nil {
		return d, err
	}
	d.Depression = dep

	obs, tz, err := cfg.Observer(db)
	switch {
	case errors.Is(err, config.ErrNoPlace):
		if cfg.Timezone != "" {
			if d.Timezone, err = time.LoadLocation(cfg.Timezone); err != nil {
				return d, err
			}
		}
		return d, nil
	case err != nil:
		return d, err
	}

	d.Observer = &obs
	d.Timezone = tz
	return d, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sun and moon data over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := cfg.Geocoder()
		if err != nil {
			return err
		}
		defaults, err := apiDefaults(cfg, db)
		if err != nil {
			return err
		}

		srv := api.NewServer(db, defaults)

		if watch, _ := cmd.Flags().GetBool("watch"); watch && config.ConfigFile() != "" {
			log.Infow("watching config file", "file", config.ConfigFile())
			config.Watch(func(cfg config.Config) {
				d, err := apiDefaults(cfg, db)
				if err != nil {
					log.Warnw("ignoring config change", "error", err)
					return
				}
				srv.SetDefaults(d)
				log.Infow("config reloaded", "location", cfg.Location, "depression", cfg.Depression)
			}, func(err error) {
				log.Warnw("config reload failed", "error", err)
			})
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, cfg.Serve.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Bool("watch", false, "reload defaults when the config file changes")
	_ = viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

