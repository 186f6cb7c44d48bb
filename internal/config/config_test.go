package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klingon-assistant/klingon"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boqwi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", DefaultAddr, "")
	fs.Int("max-candidates", klingon.DefaultMaxCandidates, "")
	fs.Int("workers", klingon.DefaultWorkers, "")
	fs.String("log-level", DefaultLogLevel, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Database)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, klingon.DefaultMaxCandidates, cfg.MaxCandidates)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, klingon.DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
database: boqwi.db
addr: ":9090"
lenient: false
workers: 2
log_format: console
cors_origins:
  - https://example.org
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "boqwi.db", cfg.Database)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.Lenient)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, []string{"https://example.org"}, cfg.CORSOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BOQWI_WORKERS", "8")
	t.Setenv("BOQWI_LOG_LEVEL", "debug")
	t.Setenv("BOQWI_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(writeConfig(t, "workers: 2\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers, "env overrides the file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Flags(t *testing.T) {
	t.Setenv("BOQWI_ADDR", ":7070")
	t.Setenv("BOQWI_WORKERS", "8")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--workers", "3", "--max-candidates", "50"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers, "set flags override env")
	assert.Equal(t, 50, cfg.MaxCandidates)
	assert.Equal(t, ":7070", cfg.Addr, "unset flags keep env")
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := Config{Workers: 1, LogFormat: "json", LogLevel: "info"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(c *Config)
	}{
		{"negative max candidates", func(c *Config) { c.MaxCandidates = -1 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.edit(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, "workers: 0\n"), nil)
	assert.ErrorContains(t, err, "workers")
}
