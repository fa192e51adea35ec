// Package config loads optgen settings from flags, the environment, .env
// files and an optional .optgen.yaml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"optgen/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. OPTGEN_WORKERS.
const EnvPrefix = "OPTGEN"

// Configuration keys, shared by the config file, the environment and flags.
const (
	KeyPackage   = "package"
	KeyOutput    = "output"
	KeyTag       = "tag"
	KeyPrefix    = "prefix"
	KeyWorkers   = "workers"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Config holds the resolved settings.
type Config struct {
	// Package overrides the generated package name.
	Package string
	// Output is the directory generated files are written to. Empty means
	// next to the containers' sources.
	Output string
	// Tag is the struct-tag key holding field directives.
	Tag string
	// Prefix marks container comment lines ("//optgen:").
	Prefix string
	// Workers bounds how many containers are resolved at once.
	Workers int

	LogLevel  string
	LogFormat string

	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// NewViper returns a viper instance with defaults and environment binding.
// Callers bind their flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTag, "opt")
	v.SetDefault(KeyPrefix, "optgen:")
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)

	return v
}

// Load reads configuration into a Config. If configFile is empty,
// .optgen.yaml is looked up in the working directory and may be absent.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".optgen")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &Config{
		Package:    v.GetString(KeyPackage),
		Output:     v.GetString(KeyOutput),
		Tag:        v.GetString(KeyTag),
		Prefix:     v.GetString(KeyPrefix),
		Workers:    v.GetInt(KeyWorkers),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", KeyWorkers, c.Workers))
	}

	if c.Tag == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyTag))
	}

	if c.Prefix == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyPrefix))
	}

	return errors.Join(errs...)
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are kept.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
