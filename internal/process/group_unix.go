//go:build !windows

// Package process manages the process groups of external commands.
package process

import (
	"os/exec"
	"syscall"
)

// SetProcessGroup makes cmd start in its own process group, so terminal
// signals aimed at this program do not reach it, and arranges for the whole
// group to be killed when cmd's context is canceled.
// Call before cmd.Start.
func SetProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort; the process may already be gone.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
