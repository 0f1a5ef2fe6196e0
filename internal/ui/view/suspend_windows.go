//go:build windows

package view

import "os"

func contSignals() []os.Signal { return nil }

// No SIGTSTP on Windows.
func (v *Viewer) suspendToShell() {}
