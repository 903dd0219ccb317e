package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LAZYQ"

// LoaderConfig holds the optional sources of Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
	Flags      *pflag.FlagSet
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile loads a .env file into the process environment before reading LAZYQ_* variables.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithFlags binds the flags registered by RegisterFlags.
func WithFlags(fs *pflag.FlagSet) LoaderOption {
	return func(lc *LoaderConfig) { lc.Flags = fs }
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"input":      "input",
	"output":     "output",
	"pretty":     "pretty",
	"log-level":  "log.level",
	"log-format": "log.format",
	"skip":       "query.skip",
	"take":       "query.take",
	"select":     "query.select",
	"group-by":   "query.group_by",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "config file (yaml, json, toml)")
	fs.String("env-file", "", "optional .env file")
	fs.StringP("input", "i", "-", "input JSON file, - for stdin")
	fs.StringP("output", "o", "-", "output file, - for stdout")
	fs.Bool("pretty", false, "indent the JSON output")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "console", "log format: console or json")
	fs.Int("skip", 0, "records to skip after ordering")
	fs.Int("take", Unbounded, "maximum records to emit, -1 for all")
	fs.StringSlice("select", nil, "fields to keep in each record")
	fs.StringSlice("group-by", nil, "up to two fields to group by")
}

// Load builds a Config from defaults, the config file, the environment and flags,
// then applies defaults and validates it.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	setDefaults(v)

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", lc.EnvFile, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.Flags != nil {
		for name, key := range flagKeys {
			f := lc.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every scalar key so AutomaticEnv can override it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("pretty", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
	v.SetDefault("query.skip", 0)
	v.SetDefault("query.take", Unbounded)
}
