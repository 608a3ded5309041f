package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvScreenshotDir overrides where captures are written.
const EnvScreenshotDir = "SAFARI_CLI_SCREENSHOT_DIR"

// ScreenshotsDir resolves the directory captures land in: the
// environment override wins, then the configured directory, then the
// current working directory.
func ScreenshotsDir(configured string) string {
	if dir := strings.TrimSpace(os.Getenv(EnvScreenshotDir)); dir != "" {
		return filepath.Clean(ExpandHome(dir))
	}
	if dir := strings.TrimSpace(configured); dir != "" {
		return filepath.Clean(ExpandHome(dir))
	}
	return "."
}
