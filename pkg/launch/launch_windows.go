//go:build windows

package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/sys/windows"
)

// Windows ships a native just-in-time debugging hook, so nothing here
// speaks the lifeline protocol: vsjitdebugger is pointed at the pid and
// the debuggee breaks into it once it has attached.

const jitDebuggerPath = `c:\windows\system32\vsjitdebugger.exe`

// ResolveJITDebugger verifies that the system just-in-time debugger is
// installed and returns its path.
func ResolveJITDebugger() (string, error) {
	if _, err := os.Stat(jitDebuggerPath); err != nil {
		return "", fmt.Errorf("could not find '%s'.", jitDebuggerPath)
	}
	return jitDebuggerPath, nil
}

// SpawnJITDebugger asks vsjitdebugger to attach to pid.
func SpawnJITDebugger(pid int) error {
	cmd := exec.Command(jitDebuggerPath, "-p", strconv.Itoa(pid))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch '%s': %v", jitDebuggerPath, err)
	}
	cmd.Process.Release()
	return nil
}

var (
	kernel32       = windows.NewLazySystemDLL("kernel32.dll")
	procDebugBreak = kernel32.NewProc("DebugBreak")
)

// DebugBreak raises a breakpoint exception in the current process so
// the freshly attached debugger gets control.
func DebugBreak() {
	procDebugBreak.Call()
}
