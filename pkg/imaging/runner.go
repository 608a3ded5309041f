package imaging

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command to completion. Tests substitute a
// recorder.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolMissing, name)
	}
	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("imaging: %s failed: %v: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
