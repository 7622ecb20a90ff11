//go:build linux || darwin

package cmds

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// platformExecDebugger replaces the wrapper's process image with the
// debugger, so no process-accounting layer sits between the terminal
// and the debugger.
func platformExecDebugger(debugger string, args []string) error {
	path, err := exec.LookPath(debugger)
	if err != nil {
		return fmt.Errorf("can't find %s on your path. Bailing.", debugger)
	}
	// Exec only returns on failure.
	return unix.Exec(path, append([]string{debugger}, args...), os.Environ())
}
