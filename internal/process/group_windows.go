//go:build windows

// Package process manages the process groups of external commands.
package process

import (
	"os/exec"
	"strconv"
	"syscall"
)

// SetProcessGroup makes cmd start in a new process group and arranges for
// its process tree to be killed when cmd's context is canceled.
// Call before cmd.Start.
func SetProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
	cmd.Cancel = func() error {
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}

// KillProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
