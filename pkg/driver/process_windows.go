//go:build windows

package driver

import (
	"os"
	"os/exec"
)

// setDetached is a no-op on Windows; session groups are not available.
func setDetached(cmd *exec.Cmd) {}

// processAlive relies on FindProcess opening a real handle on Windows;
// it fails when no such process exists.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = proc.Release()
	return true
}

func signalTerm(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}

func signalKill(pid int) error {
	return signalTerm(pid)
}
