// Package config loads runtime settings for the server and CLI.
//
// Precedence, highest first: command-line flags, ETHIOMORPH_* environment
// variables, ethiomorph.yaml, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "ethiomorph"
	configFileType = "yaml"
	envPrefix      = "ETHIOMORPH"

	KeyDataDir     = "data_dir"
	KeyAddr        = "addr"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyCORSOrigins = "cors_origins"

	DefaultAddr      = ":9011"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config is the resolved configuration.
type Config struct {
	// DataDir holds lexicon.json, templates.json and stems.json.
	// Empty means the embedded data set.
	DataDir     string   `mapstructure:"data_dir"`
	Addr        string   `mapstructure:"addr"`
	LogLevel    string   `mapstructure:"log_level"`
	LogFormat   string   `mapstructure:"log_format"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Load reads configuration. configFile may be empty, in which case
// ethiomorph.yaml is looked up in the working directory and its absence is
// not an error. Flags named like the keys with dashes (data-dir, log-level)
// are bound when present in flags.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyCORSOrigins, []string{"*"})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyDataDir, KeyAddr, KeyLogLevel, KeyLogFormat, KeyCORSOrigins} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid %s %q: want json or console", KeyLogFormat, c.LogFormat)
	}
	if c.Addr == "" {
		return fmt.Errorf("%s must not be empty", KeyAddr)
	}
	return nil
}
