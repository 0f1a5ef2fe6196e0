//go:build !windows

package view

import (
	"os"
	"syscall"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell hands the terminal back and stops only this process, so
// job control in the launching shell keeps working.
func (v *Viewer) suspendToShell() {
	_ = v.screen.Suspend()
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
