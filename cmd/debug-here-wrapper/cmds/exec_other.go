//go:build !linux && !darwin

package cmds

import (
	"fmt"
	"os"
	"os/exec"
)

// There is no execve to take over the process image here (windows has
// the JIT path instead and never spawns the wrapper), but a stray
// invocation should still behave sensibly: run the debugger as a child
// and stay its parent.
func platformExecDebugger(debugger string, args []string) error {
	cmd := exec.Command(debugger, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %v", debugger, err)
	}
	return nil
}
