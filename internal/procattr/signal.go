package procattr

import (
	"os"
	"syscall"
)

// SignalGroup delivers a signal to the agent's entire process group. The
// negative PID form reaches agent-spawned children (shells, test runners),
// not just the direct child.
func SignalGroup(p *os.Process, sig syscall.Signal) error {
	if p == nil {
		return nil
	}
	return syscall.Kill(-p.Pid, sig)
}

// KillGroup force-kills the agent's entire process group.
func KillGroup(p *os.Process) error {
	return SignalGroup(p, syscall.SIGKILL)
}
