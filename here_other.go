//go:build !linux && !darwin && !windows

package debughere

import (
	"fmt"
	"runtime"
)

func hereImpl(debugger string) {
	if alreadyEntered() {
		return
	}
	bail(fmt.Errorf("%s is not supported; debug-here only works on linux, macos, and windows", runtime.GOOS))
}
