package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Configuration keys; each is also a flag name and, upper-cased with the
// TWOOPT_ prefix and '-' → '_', an environment variable.
const (
	keyConfig     = "config"
	keyLogLevel   = "log-level"
	keyInit       = "init"
	keySeed       = "seed"
	keyDense      = "dense"
	keyVerify     = "verify"
	keyFormat     = "format"
	keyJobs       = "jobs"
	keyProfile    = "profile"
	keyProfileDir = "profile-dir"
	keyPrintTour  = "print-tour"

	envPrefix      = "TWOOPT"
	defaultCfgName = ".twoopt"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// Profile modes.
const (
	profileCPU = "cpu"
	profileMem = "mem"
)

var (
	errBadFormat  = errors.New("format must be text, yaml or json")
	errBadProfile = errors.New("profile must be cpu or mem")
	errBadJobs    = errors.New("jobs must be at least 1")
)

type config struct {
	LogLevel   slog.Level
	Init       string
	Seed       int64
	Dense      bool
	Verify     bool
	Format     string
	Jobs       int
	Profile    string
	ProfileDir string
	PrintTour  bool
}

// readConfigFile wires env lookup and reads the config file: the explicit
// --config path if given, otherwise $HOME/.twoopt.{yaml,json,toml} if present.
func readConfigFile(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}

		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(defaultCfgName)
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// loadConfig snapshots and validates the merged flag/env/file settings.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Init:       v.GetString(keyInit),
		Seed:       v.GetInt64(keySeed),
		Dense:      v.GetBool(keyDense),
		Verify:     v.GetBool(keyVerify),
		Format:     strings.ToLower(v.GetString(keyFormat)),
		Jobs:       v.GetInt(keyJobs),
		Profile:    strings.ToLower(v.GetString(keyProfile)),
		ProfileDir: v.GetString(keyProfileDir),
		PrintTour:  v.GetBool(keyPrintTour),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return config{}, fmt.Errorf("log-level: %w", err)
	}

	switch cfg.Format {
	case "", formatText:
		cfg.Format = formatText
	case formatYAML, formatJSON:
	default:
		return config{}, fmt.Errorf("%w, got %q", errBadFormat, cfg.Format)
	}
	switch cfg.Profile {
	case "", profileCPU, profileMem:
	default:
		return config{}, fmt.Errorf("%w, got %q", errBadProfile, cfg.Profile)
	}
	if cfg.Jobs < 1 {
		return config{}, errBadJobs
	}

	return cfg, nil
}
