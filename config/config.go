// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jjtimmons/gibfrag/internal/frag"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and those available from the command line
type Config struct {
	// the number of fragments to split the target into
	Fragments int `mapstructure:"fragments"`

	// the minimum length of every fragment but the last
	MinLength int `mapstructure:"min-length"`

	// the maximum length of every fragment but the last
	MaxLength int `mapstructure:"max-length"`

	// the bp of overlap between neighboring fragments
	Overlap int `mapstructure:"overlap"`

	// the number of bp to show from either end of a fragment in reports
	Preview int `mapstructure:"preview"`

	// the number of records to partition at once with --per-record
	Workers int `mapstructure:"workers"`

	// whether to log debug output
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default settings with v.
func SetDefaults(v *viper.Viper) {
	p := frag.DefaultParams()
	v.SetDefault("fragments", p.Fragments)
	v.SetDefault("min-length", p.MinLength)
	v.SetDefault("max-length", p.MaxLength)
	v.SetDefault("overlap", p.Overlap)
	v.SetDefault("preview", 50)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("gibfrag")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the settings file at path, if any, into v and returns the
// populated Config. Settings in the file override defaults and are
// overridden by bound flags and GIBFRAG_ environment variables.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if c.Workers < 1 {
		c.Workers = 1
	}

	return c, nil
}

// New returns a new Config populated by the global viper instance.
func New(path string) (*Config, error) {
	return Load(viper.GetViper(), path)
}

// Params returns the partitioning parameters.
func (c *Config) Params() frag.Params {
	return frag.Params{
		Fragments: c.Fragments,
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Overlap:   c.Overlap,
	}
}
