package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigDir overrides the directory holding the config file and the
// persisted session record. Meant for tests and sandboxed setups.
const EnvConfigDir = "SAFARI_CLI_CONFIG_DIR"

const appDirName = "safari-cli"

// ConfigDir returns the directory for this tool's configuration and state.
// It prefers the SAFARI_CLI_CONFIG_DIR environment variable, then falls
// back to the OS user configuration directory.
func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		return filepath.Clean(ExpandHome(dir)), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// SessionFile returns the path of the persisted session record.
func SessionFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// ConfigFile returns the path of the YAML configuration file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory. The
// path is returned unchanged when the home directory cannot be resolved.
func ExpandHome(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil || strings.TrimSpace(home) == "" {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/"))
	}
	return path
}
