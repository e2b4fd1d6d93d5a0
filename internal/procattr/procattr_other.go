//go:build !linux

// Package procattr provides platform-specific subprocess configuration
// so terminated agent runs do not leave orphans.
package procattr

import (
	"os/exec"
	"syscall"
)

// Set places the agent CLI in its own process group. Pdeathsig is not
// available off Linux; the group still enables kill -<signal> -<pgid>
// cleanup on cancellation.
func Set(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
