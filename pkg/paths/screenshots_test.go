package paths

import "testing"

func TestScreenshotsDirEnvWins(t *testing.T) {
	t.Setenv(EnvScreenshotDir, "/tmp/captures/")
	if got := ScreenshotsDir("/configured"); got != "/tmp/captures" {
		t.Fatalf("ScreenshotsDir = %q", got)
	}
}

func TestScreenshotsDirConfigured(t *testing.T) {
	t.Setenv(EnvScreenshotDir, "")
	if got := ScreenshotsDir("/configured/shots"); got != "/configured/shots" {
		t.Fatalf("ScreenshotsDir = %q", got)
	}
}

func TestScreenshotsDirDefault(t *testing.T) {
	t.Setenv(EnvScreenshotDir, "")
	if got := ScreenshotsDir("  "); got != "." {
		t.Fatalf("ScreenshotsDir = %q", got)
	}
}
