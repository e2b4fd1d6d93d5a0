//go:build linux

// Package procattr provides platform-specific subprocess configuration
// so terminated agent runs do not leave orphans.
package procattr

import (
	"os/exec"
	"syscall"
)

// Set places the agent CLI in its own process group and, on Linux, arms
// Pdeathsig so the agent receives SIGTERM if agentview itself dies.
func Set(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid:   true,
		Pdeathsig: syscall.SIGTERM,
	}
}
