// Package config loads sunglide settings from defaults, a .sunglide.toml
// file, SUNGLIDE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/geocoder"
)

// ErrNoPlace is returned by Observer when neither a location name nor
// coordinates are configured.
var ErrNoPlace = errors.New("no location or coordinates configured")

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SUNGLIDE"

// LogConfig holds logging options.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
}

// ServeConfig holds HTTP service options.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config holds the runtime configuration.
type Config struct {
	Location      string      `mapstructure:"location"`
	Latitude      string      `mapstructure:"latitude"`
	Longitude     string      `mapstructure:"longitude"`
	Elevation     float64     `mapstructure:"elevation"`
	Timezone      string      `mapstructure:"timezone"`
	Depression    string      `mapstructure:"depression"`
	LocationsFile string      `mapstructure:"locations_file"`
	Log           LogConfig   `mapstructure:"log"`
	Serve         ServeConfig `mapstructure:"serve"`
}

func setDefaults() {
	viper.SetDefault("location", "")
	viper.SetDefault("latitude", "")
	viper.SetDefault("longitude", "")
	viper.SetDefault("elevation", 0.0)
	viper.SetDefault("timezone", "")
	viper.SetDefault("depression", "civil")
	viper.SetDefault("locations_file", "")
	viper.SetDefault("log.debug", false)
	viper.SetDefault("log.file", "")
	viper.SetDefault("serve.addr", ":8080")
}

// Init points viper at the config file and the environment. An empty path
// searches for .sunglide.toml in the working and home directories; a
// missing file in that case is not an error.
func Init(path string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("toml")

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(".sunglide")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Watch calls fn with the reloaded configuration every time the config
// file changes. Reload errors are passed to onErr.
func Watch(fn func(Config), onErr func(error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load()
		if err != nil {
			onErr(err)
			return
		}
		fn(cfg)
	})
	viper.WatchConfig()
}

// ConfigFile returns the file viper read, if any.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

// Geocoder returns the built-in location database extended with the
// entries of LocationsFile.
func (c Config) Geocoder() (*geocoder.DB, error) {
	db := geocoder.Default()
	if c.LocationsFile == "" {
		return db, nil
	}

	f, err := os.Open(c.LocationsFile)
	if err != nil {
		return nil, fmt.Errorf("open locations file: %w", err)
	}
	defer f.Close()

	if _, err := db.LoadTOML(f); err != nil {
		return nil, fmt.Errorf("%s: %w", c.LocationsFile, err)
	}
	return db, nil
}

// Observer resolves the configured place. A named Location wins over
// explicit coordinates, which may be decimal or DMS strings. An explicit
// Timezone wins over the location's own.
func (c Config) Observer(db *geocoder.DB) (sunglide.Observer, *time.Location, error) {
	var obs sunglide.Observer
	tzName := c.Timezone

	if c.Location != "" {
		l, err := db.Lookup(c.Location)
		if err != nil {
			return sunglide.Observer{}, nil, err
		}
		obs = l.Observer()
		if tzName == "" {
			tzName = l.Timezone
		}
	} else {
		if c.Latitude == "" && c.Longitude == "" {
			return sunglide.Observer{}, nil, ErrNoPlace
		}
		lat, err := sunglide.ParseDMS(c.Latitude, 0)
		if err != nil || lat < -90 || lat > 90 {
			return sunglide.Observer{}, nil, fmt.Errorf("invalid latitude %q", c.Latitude)
		}
		lon, err := sunglide.ParseDMS(c.Longitude, 0)
		if err != nil || lon < -180 || lon > 180 {
			return sunglide.Observer{}, nil, fmt.Errorf("invalid longitude %q", c.Longitude)
		}
		obs = sunglide.NewObserver(lat, lon)
	}

	if c.Elevation > 0 {
		obs.Elevation = sunglide.Height(c.Elevation)
	}

	tz := time.UTC
	if tzName != "" {
		var err error
		if tz, err = time.LoadLocation(tzName); err != nil {
			return sunglide.Observer{}, nil, fmt.Errorf("timezone: %w", err)
		}
	}
	return obs, tz, nil
}

// DepressionValue parses the configured dawn and dusk depression.
func (c Config) DepressionValue() (sunglide.Depression, error) {
	return sunglide.ParseDepression(strings.ToLower(strings.TrimSpace(c.Depression)))
}
