package driver

import (
	"fmt"
	"os/exec"
	"strconv"
)

// ProcessControl abstracts the operating system process operations the
// manager needs, so tests can substitute a fake.
type ProcessControl interface {
	// Launch starts the driver binary listening on port and returns its
	// pid. The process is detached from the calling terminal and
	// survives this process exiting.
	Launch(port int) (int, error)

	// Alive reports whether pid names a running process. A process we
	// lack permission to signal still counts as alive.
	Alive(pid int) bool

	// Terminate asks the process to shut down cleanly.
	Terminate(pid int) error

	// Kill stops the process forcibly.
	Kill(pid int) error
}

type execControl struct {
	binary string
}

// NewProcessControl returns a ProcessControl that launches the named
// driver binary, resolved through PATH.
func NewProcessControl(binary string) ProcessControl {
	return &execControl{binary: binary}
}

func (p *execControl) Launch(port int) (int, error) {
	path, err := exec.LookPath(p.binary)
	if err != nil {
		return 0, fmt.Errorf("driver binary %q not found in PATH: %w", p.binary, err)
	}
	cmd := exec.Command(path, "-p", strconv.Itoa(port))
	setDetached(cmd)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", p.binary, err)
	}
	pid := cmd.Process.Pid
	// The driver must outlive this invocation; drop the handle instead
	// of waiting on the child.
	_ = cmd.Process.Release()
	return pid, nil
}

func (p *execControl) Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return processAlive(pid)
}

func (p *execControl) Terminate(pid int) error { return signalTerm(pid) }

func (p *execControl) Kill(pid int) error { return signalKill(pid) }
