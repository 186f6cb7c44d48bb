// Package config loads settings for the boqwi binaries from defaults, a
// YAML file, BOQWI_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/klingon-assistant/klingon"
)

// Defaults.
const (
	DefaultConfigFile = "boqwi.yaml"
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
	envPrefix         = "BOQWI_"
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	// Database is the SQLite file; empty means an in-memory store.
	Database string `koanf:"database"`
	// Data is a YAML dictionary file loaded at startup.
	Data          string   `koanf:"data"`
	Addr          string   `koanf:"addr"`
	MaxCandidates int      `koanf:"max_candidates"`
	Lenient       bool     `koanf:"lenient"`
	Workers       int      `koanf:"workers"`
	LogLevel      string   `koanf:"log_level"`
	LogFormat     string   `koanf:"log_format"`
	CORSOrigins   []string `koanf:"cors_origins"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Load reads the configuration. Precedence, highest first: flags that were
// set explicitly, environment, config file, defaults. cfgFile may be empty,
// in which case boqwi.yaml is read if present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"database":       "",
		"data":           "",
		"addr":           DefaultAddr,
		"max_candidates": klingon.DefaultMaxCandidates,
		"lenient":        true,
		"workers":        klingon.DefaultWorkers,
		"log_level":      DefaultLogLevel,
		"log_format":     DefaultLogFormat,
		"cors_origins":   []string{"*"},
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// BOQWI_MAX_CANDIDATES -> max_candidates
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// splitList expands comma-separated items, as given in the environment.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Validate checks the values that have a restricted range.
func (c *Config) Validate() error {
	if c.MaxCandidates < 0 {
		return fmt.Errorf("max_candidates must not be negative, got %d", c.MaxCandidates)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
