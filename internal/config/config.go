package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CSVCMP"

// Config represents the csvcmp configuration.
type Config struct {
	Format      string    `mapstructure:"format" yaml:"format"`
	Match       string    `mapstructure:"match" yaml:"match"`
	Context     int       `mapstructure:"context" yaml:"context"`
	StrictIndex bool      `mapstructure:"strict_index" yaml:"strict_index"`
	WithHeaders bool      `mapstructure:"with_headers" yaml:"with_headers"`
	Delimiter   string    `mapstructure:"delimiter" yaml:"delimiter"`
	NoColor     bool      `mapstructure:"no_color" yaml:"no_color"`
	Log         LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:      "text",
		Match:       "contains",
		Context:     3,
		StrictIndex: true,
		WithHeaders: false,
		Delimiter:   "/",
		NoColor:     false,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// path may be empty. Override keys use the config file names ("match",
// "strict_index", "log.level", ...); only flags the user set should be passed.
func Load(path string, overrides map[string]any) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("format", d.Format)
	v.SetDefault("match", d.Match)
	v.SetDefault("context", d.Context)
	v.SetDefault("strict_index", d.StrictIndex)
	v.SetDefault("with_headers", d.WithHeaders)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	switch c.Match {
	case "exact", "contains":
	default:
		return fmt.Errorf("unknown match policy: %s", c.Match)
	}
	if c.Context < 0 {
		return fmt.Errorf("context must be 0 or greater, got %d", c.Context)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	return nil
}
