// Package config loads the settings of the temporal command from flags,
// TEMPORAL_* environment variables, and an optional config file, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrConfig wraps configuration errors.
var ErrConfig = errors.New("config")

// envPrefix prefixes the environment variable for each setting.
const envPrefix = "TEMPORAL"

// Setting keys, shared by flags, environment variables, and config files.
const (
	keyKind       = "kind"
	keyToStandard = "to-standard"
	keyTZ         = "tz"
	keyIndent     = "indent"
	keyLogLevel   = "log-level"
	keyConfig     = "config"
)

// Config holds the settings of a single temporal run.
type Config struct {
	// Kind names the kind of temporal value to convert to or from.
	Kind string

	// ToStandard converts the input from a temporal literal to a host date
	// rather than from a host date to a temporal value.
	ToStandard bool

	// TZ names the ambient time zone, "Local" for the host zone.
	TZ string

	// Indent pretty-prints the JSON output.
	Indent bool

	// LogLevel names the minimum zerolog level to log.
	LogLevel string

	// Args holds the positional arguments left after parsing flags.
	Args []string
}

// Load parses args, the command line arguments without the program name, and
// merges them with the environment and the config file named by --config or
// TEMPORAL_CONFIG. Returns pflag.ErrHelp when args request usage.
func Load(name string, args []string) (*Config, error) {
	fs := FlagSet(name)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %v: %w", ErrConfig, path, err)
		}
	}

	return &Config{
		Kind:       v.GetString(keyKind),
		ToStandard: v.GetBool(keyToStandard),
		TZ:         v.GetString(keyTZ),
		Indent:     v.GetBool(keyIndent),
		LogLevel:   v.GetString(keyLogLevel),
		Args:       fs.Args(),
	}, nil
}

// FlagSet returns the flags the temporal command accepts.
func FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringP(keyKind, "k", "ZonedDateTime", "kind of temporal value")
	fs.BoolP(keyToStandard, "s", false, "convert a temporal literal to a standard date")
	fs.StringP(keyTZ, "z", "Local", "ambient time zone name")
	fs.BoolP(keyIndent, "i", false, "indent JSON output")
	fs.String(keyLogLevel, zerolog.InfoLevel.String(), "minimum log level")
	fs.StringP(keyConfig, "c", "", "config file path")
	return fs
}

// Location loads the ambient time zone named by TZ. "Local" and the empty
// string name the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TZ == "" {
		//nolint:gosmopolitan // The host zone is the default.
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return nil, fmt.Errorf("%w: tz: %w", ErrConfig, err)
	}
	return loc, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log-level: %w", ErrConfig, err)
	}
	return lvl, nil
}
