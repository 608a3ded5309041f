package imaging

import (
	"context"
	"encoding/base64"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

// fakeRunner records invocations and returns a canned error.
type fakeRunner struct {
	calls [][]string
	err   error
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestSaveWritesDecodedPayload(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := NewProcessor(fs, &fakeRunner{}, "sips", nil)

	payload := []byte("\x89PNG fake image bytes")
	encoded := base64.StdEncoding.EncodeToString(payload)

	path, err := p.Save(encoded, "/captures/deep/shot.png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != "/captures/deep/shot.png" {
		t.Fatalf("path = %q", path)
	}
	got, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("written bytes differ: %q", got)
	}
}

func TestSaveRejectsBadBase64(t *testing.T) {
	p := NewProcessor(afero.NewMemMapFs(), &fakeRunner{}, "sips", nil)
	if _, err := p.Save("not base64 !!!", "/shot.png"); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestCropToRectArguments(t *testing.T) {
	runner := &fakeRunner{}
	p := NewProcessor(afero.NewMemMapFs(), runner, "sips", nil)

	err := p.CropToRect(context.Background(), "/shot.png", webdriver.Rect{
		X: 10.4, Y: 20.6, Width: 300.2, Height: 150.5,
	})
	if err != nil {
		t.Fatalf("CropToRect: %v", err)
	}
	want := []string{"sips", "--cropOffset", "21", "10", "--cropToHeightWidth", "151", "300", "/shot.png"}
	if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0], want) {
		t.Fatalf("calls = %v, want %v", runner.calls, want)
	}
}

func TestCropToRectRejectsEmptyRect(t *testing.T) {
	p := NewProcessor(afero.NewMemMapFs(), &fakeRunner{}, "sips", nil)
	err := p.CropToRect(context.Background(), "/shot.png", webdriver.Rect{Width: 0, Height: 10})
	if err == nil {
		t.Fatal("expected an error for a rect without area")
	}
}

func TestResizeArguments(t *testing.T) {
	runner := &fakeRunner{}
	p := NewProcessor(afero.NewMemMapFs(), runner, "sips", nil)

	if err := p.Resize(context.Background(), "/shot.png", 800); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	want := []string{"sips", "-Z", "800", "/shot.png"}
	if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0], want) {
		t.Fatalf("calls = %v, want %v", runner.calls, want)
	}
}

func TestMissingToolIsSoftFailure(t *testing.T) {
	runner := &fakeRunner{err: ErrToolMissing}
	p := NewProcessor(afero.NewMemMapFs(), runner, "sips", nil)

	if err := p.Resize(context.Background(), "/shot.png", 800); err != nil {
		t.Fatalf("missing tool should not fail the command: %v", err)
	}
	if err := p.CropToRect(context.Background(), "/shot.png", webdriver.Rect{Width: 1, Height: 1}); err != nil {
		t.Fatalf("missing tool should not fail the command: %v", err)
	}
}

func TestToolFailurePropagates(t *testing.T) {
	runner := &fakeRunner{err: context.DeadlineExceeded}
	p := NewProcessor(afero.NewMemMapFs(), runner, "sips", nil)
	if err := p.Resize(context.Background(), "/shot.png", 800); err == nil {
		t.Fatal("a real tool failure must propagate")
	}
}

func TestDefaultName(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	name := DefaultName(at)
	if !strings.HasPrefix(name, "shot-") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("name = %q", name)
	}
	if name != strings.ToLower(name) {
		t.Fatalf("name %q is not lowercase", name)
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := DefaultName(at)
		if seen[n] {
			t.Fatalf("duplicate name %q", n)
		}
		seen[n] = true
	}
}
