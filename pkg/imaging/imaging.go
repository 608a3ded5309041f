// Package imaging stores screenshot payloads and post-processes them
// with an external image tool. The tool being absent is a soft failure:
// the raw capture is kept and the processing step is skipped.
package imaging

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/TamasNo1/safari-cli/pkg/logging"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

// ErrToolMissing means the external image tool is not installed.
var ErrToolMissing = errors.New("image tool not found")

// Processor saves captures and shells out to the image tool for crops
// and resizes.
type Processor struct {
	fs     afero.Fs
	runner Runner
	tool   string
	log    logrus.FieldLogger
}

// NewProcessor builds a Processor. A nil runner gets the real one; a nil
// logger stays silent.
func NewProcessor(fs afero.Fs, runner Runner, tool string, log logrus.FieldLogger) *Processor {
	if runner == nil {
		runner = execRunner{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Processor{fs: fs, runner: runner, tool: tool, log: log}
}

// Save decodes a base64 PNG payload and writes it to path, creating the
// directory on demand. It returns the path written.
func (p *Processor) Save(data, path string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("imaging: decode capture payload: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("imaging: create capture directory: %w", err)
		}
	}
	if err := afero.WriteFile(p.fs, path, raw, 0o644); err != nil {
		return "", fmt.Errorf("imaging: write capture: %w", err)
	}
	return path, nil
}

// CropToRect crops the image at path to an element's bounding box,
// in place.
func (p *Processor) CropToRect(ctx context.Context, path string, r webdriver.Rect) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("imaging: crop rect %gx%g has no area", r.Width, r.Height)
	}
	return p.run(ctx,
		"--cropOffset", pixels(r.Y), pixels(r.X),
		"--cropToHeightWidth", pixels(r.Height), pixels(r.Width),
		path,
	)
}

// Resize scales the image at path so its longest side is maxDim pixels,
// in place.
func (p *Processor) Resize(ctx context.Context, path string, maxDim int) error {
	if maxDim <= 0 {
		return fmt.Errorf("imaging: resize dimension %d must be positive", maxDim)
	}
	return p.run(ctx, "-Z", strconv.Itoa(maxDim), path)
}

func (p *Processor) run(ctx context.Context, args ...string) error {
	err := p.runner.Run(ctx, p.tool, args...)
	if errors.Is(err, ErrToolMissing) {
		p.log.WithField("tool", p.tool).Warn("image tool not found, keeping the raw capture")
		return nil
	}
	return err
}

func pixels(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
