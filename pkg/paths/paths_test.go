package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigDirUsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestConfigDirExpandsHomeInOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigDir, "~/state/safari")
	want := filepath.Join(home, "state", "safari")
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestConfigDirDefaultsUnderUserConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv("HOME", t.TempDir())
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if filepath.Base(got) != appDirName {
		t.Fatalf("expected dir ending in %q, got %q", appDirName, got)
	}
}

func TestSessionAndConfigFilesLiveInConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	session, err := SessionFile()
	if err != nil {
		t.Fatalf("SessionFile: %v", err)
	}
	if session != filepath.Join(dir, "session.json") {
		t.Fatalf("unexpected session file path: %q", session)
	}

	cfg, err := ConfigFile()
	if err != nil {
		t.Fatalf("ConfigFile: %v", err)
	}
	if cfg != filepath.Join(dir, "config.yaml") {
		t.Fatalf("unexpected config file path: %q", cfg)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/sub", filepath.Join(home, "sub")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}
	for _, tc := range cases {
		if got := ExpandHome(tc.in); got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
