//go:build !windows

package driver

import (
	"errors"
	"os/exec"
	"syscall"
)

// setDetached puts the child in its own session so it keeps running when
// the terminal and this process go away. Standard streams are left
// unwired, which hands the child /dev/null for all three.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}

// processAlive asks the kernel about pid with the null signal. EPERM
// means the process exists but belongs to someone else, which is still
// alive for our purposes.
func processAlive(pid int) bool {
	err := syscall.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}

func signalTerm(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}

func signalKill(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}
