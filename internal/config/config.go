package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/psantana5/runnertest/internal/report"
	"github.com/psantana5/runnertest/pkg/logging"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. RUNNERTEST_FROZEN=true
const EnvPrefix = "RUNNERTEST"

// Config is the effective configuration of a run
type Config struct {
	// Suite behaviour
	Frozen bool `mapstructure:"frozen" yaml:"frozen" json:"frozen"`
	Strict bool `mapstructure:"strict" yaml:"strict" json:"strict"` // assertRaises semantics instead of log-and-pass

	// Report
	Verbosity   int    `mapstructure:"verbosity" yaml:"verbosity" json:"verbosity"`          // 0, 1 or 2
	Output      string `mapstructure:"output" yaml:"output" json:"output"`                   // text, table, json, yaml
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file" json:"metrics_file"` // Prometheus textfile, empty disables

	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// LogConfig configures the run log
type LogConfig struct {
	File   string `mapstructure:"file" yaml:"file" json:"file"` // empty logs to stderr
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	Append bool   `mapstructure:"append" yaml:"append" json:"append"` // false rewrites the file every run
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Verbosity: 2,
		Output:    report.OutputText,
		Log: LogConfig{
			File:   "runner_tests.log",
			Level:  "info",
			Format: string(logging.FormatPlain),
		},
	}
}

// SetDefaults registers Default() on v so that file, env and flag layers override it
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("frozen", d.Frozen)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("verbosity", d.Verbosity)
	v.SetDefault("output", d.Output)
	v.SetDefault("metrics_file", d.MetricsFile)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.append", d.Log.Append)
}

// Setup prepares v: defaults, environment binding and the config file location.
// An explicit cfgFile wins; otherwise $HOME/.runnertest/config.yaml is searched.
func Setup(v *viper.Viper, cfgFile string) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".runnertest"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the config file if one exists and decodes v into a validated Config.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("invalid verbosity %d (want 0, 1 or 2)", c.Verbosity)
	}

	switch c.Output {
	case report.OutputText, report.OutputTable, report.OutputJSON, report.OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (want text, table, json or yaml)", c.Output)
	}

	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("invalid log.format: %w", err)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}

	return nil
}
