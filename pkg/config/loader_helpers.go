package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// loadAndMerge reads a YAML file and merges it into cfg. The file is
// parsed twice: once into the typed structure and once into a raw map,
// so explicitly written false booleans can be told apart from absent
// ones.
func loadAndMerge(fs afero.Fs, cfg *Config, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base, field by field. Zero values
// mean "not set" except for booleans, which consult the raw map.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if override.Driver.Port != 0 {
		base.Driver.Port = override.Driver.Port
	}
	if override.Driver.Binary != "" {
		base.Driver.Binary = override.Driver.Binary
	}
	if override.Driver.StartupTimeout != 0 {
		base.Driver.StartupTimeout = override.Driver.StartupTimeout
	}
	if override.Driver.PollInterval != 0 {
		base.Driver.PollInterval = override.Driver.PollInterval
	}

	if override.Request.Timeout != 0 {
		base.Request.Timeout = override.Request.Timeout
	}

	if override.Screenshots.Dir != "" {
		base.Screenshots.Dir = override.Screenshots.Dir
	}
	if override.Screenshots.Tool != "" {
		base.Screenshots.Tool = override.Screenshots.Tool
	}

	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}

	if boolFieldSet(raw, "output", "json") {
		base.Output.JSON = override.Output.JSON
	}
	if boolFieldSet(raw, "output", "no_color") {
		base.Output.NoColor = override.Output.NoColor
	}
}

// boolFieldSet reports whether the raw YAML document contained the given
// key path at all.
func boolFieldSet(raw map[string]any, path ...string) bool {
	node := raw
	for i, key := range path {
		value, ok := node[key]
		if !ok {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return false
		}
		node = next
	}
	return false
}

func applyEnvOverrides(cfg *Config) {
	if port, ok := envInt(EnvPort); ok {
		cfg.Driver.Port = port
	}
	if binary := strings.TrimSpace(os.Getenv(EnvDriverBinary)); binary != "" {
		cfg.Driver.Binary = binary
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.Log.Level = level
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		cfg.Log.Format = format
	}
	if v, ok := envBool(EnvJSON); ok {
		cfg.Output.JSON = v
	}
	if v, ok := envBool(EnvNoColor); ok {
		cfg.Output.NoColor = v
	}
}

// envBool reads a boolean environment variable. Unparseable values are
// ignored rather than fatal.
func envBool(name string) (value, ok bool) {
	rawValue, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(rawValue)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func envInt(name string) (int, bool) {
	rawValue, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rawValue))
	if err != nil {
		return 0, false
	}
	return n, true
}
