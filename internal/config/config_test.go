package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	Setup(v, "")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
frozen: true
strict: true
verbosity: 1
output: json
metrics_file: /tmp/runnertest.prom
log:
  file: out/run.log
  level: debug
  format: json
  append: true
`)
	v := viper.New()
	Setup(v, path)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Frozen)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 1, cfg.Verbosity)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/tmp/runnertest.prom", cfg.MetricsFile)
	assert.Equal(t, LogConfig{File: "out/run.log", Level: "debug", Format: "json", Append: true}, cfg.Log)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "frozen: false\nlog:\n  level: info\n")
	t.Setenv("RUNNERTEST_FROZEN", "true")
	t.Setenv("RUNNERTEST_LOG_LEVEL", "error")

	v := viper.New()
	Setup(v, path)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Frozen)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestDefaultConfigFileInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".runnertest")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("strict: true\n"), 0644))

	v := viper.New()
	Setup(v, "")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestMissingExplicitFile(t *testing.T) {
	v := viper.New()
	Setup(v, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"table output", func(c *Config) { c.Output = "table" }, false},
		{"quiet", func(c *Config) { c.Verbosity = 0 }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"bad output", func(c *Config) { c.Output = "xml" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "logfmt" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"warning level", func(c *Config) { c.Log.Level = "WARNING" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
