package debugdetect

import (
	"fmt"
	"runtime"
	"time"
)

// IsDebuggerAttached returns true if the current process is being
// debugged.
//
// Returns an error if the debugger state cannot be determined.
// Supported platforms: linux, darwin, windows.
func IsDebuggerAttached() (bool, error) {
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		return detectDebuggerAttached()
	default:
		return false, fmt.Errorf("debugger detection not supported on %s", runtime.GOOS)
	}
}

// WaitForDebugger polls until a debugger attaches to the current
// process. It returns an error only if the debugger state cannot be
// determined; otherwise it does not return until the attach happens.
func WaitForDebugger() error {
	for {
		attached, err := IsDebuggerAttached()
		if attached || err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
	}
}
