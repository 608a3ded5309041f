package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fs afero.Fs, body string) string {
	t.Helper()
	path := "/home/user/.config/safari-cli/config.yaml"
	require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/nowhere/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Driver.Port)
	assert.Equal(t, DefaultBinary, cfg.Driver.Binary)
	assert.Equal(t, DefaultStartupTimeout, cfg.Driver.StartupTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Driver.PollInterval)
	assert.Equal(t, DefaultRequestTimeout, cfg.Request.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Output.JSON)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
driver:
  port: 4444
  startup_timeout: 10s
log:
  level: debug
output:
  json: true
`)
	cfg, err := Load(fs, path)
	require.NoError(t, err)

	assert.Equal(t, 4444, cfg.Driver.Port)
	assert.Equal(t, 10*time.Second, cfg.Driver.StartupTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Output.JSON)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultBinary, cfg.Driver.Binary)
	assert.Equal(t, DefaultPollInterval, cfg.Driver.PollInterval)
}

func TestLoadExplicitFalseBoolean(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
output:
  json: false
`)
	t.Setenv(EnvJSON, "")
	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.False(t, cfg.Output.JSON)

	// The same document with json, true flips it, proving the raw-map
	// detection sees the key either way.
	path = writeConfig(t, fs, "output:\n  json: true\n")
	cfg, err = Load(fs, path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.JSON)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, "driver:\n  port: 4444\n")
	t.Setenv(EnvPort, "5555")
	t.Setenv(EnvLogLevel, "trace")
	t.Setenv(EnvNoColor, "yes")

	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, 5555, cfg.Driver.Port)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, "driver: [this is not\n")
	_, err := Load(fs, path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"port too low", func(c *Config) { c.Driver.Port = 0 }, false},
		{"port too high", func(c *Config) { c.Driver.Port = 70000 }, false},
		{"empty binary", func(c *Config) { c.Driver.Binary = " " }, false},
		{"zero startup timeout", func(c *Config) { c.Driver.StartupTimeout = 0 }, false},
		{"poll slower than startup", func(c *Config) {
			c.Driver.PollInterval = time.Minute
			c.Driver.StartupTimeout = time.Second
		}, false},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"json format", func(c *Config) { c.Log.Format = "json" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBoolFieldSet(t *testing.T) {
	raw := map[string]any{
		"output": map[string]any{"json": false},
		"flat":   true,
	}
	assert.True(t, boolFieldSet(raw, "output", "json"))
	assert.True(t, boolFieldSet(raw, "flat"))
	assert.False(t, boolFieldSet(raw, "output", "no_color"))
	assert.False(t, boolFieldSet(raw, "missing", "json"))
	assert.False(t, boolFieldSet(raw, "flat", "nested"))
}

func TestEnvBool(t *testing.T) {
	cases := map[string]struct {
		value, ok bool
	}{
		"1": {true, true}, "true": {true, true}, "YES": {true, true}, "on": {true, true},
		"0": {false, true}, "false": {false, true}, "No": {false, true}, "off": {false, true},
		"maybe": {false, false},
	}
	for input, want := range cases {
		t.Setenv("SAFARI_CLI_TEST_BOOL", input)
		value, ok := envBool("SAFARI_CLI_TEST_BOOL")
		if value != want.value || ok != want.ok {
			t.Fatalf("envBool(%q) = %v,%v want %v,%v", input, value, ok, want.value, want.ok)
		}
	}
}
