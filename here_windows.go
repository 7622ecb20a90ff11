//go:build windows

package debughere

import (
	"os"

	"github.com/debug-here/debughere/pkg/debugdetect"
	"github.com/debug-here/debughere/pkg/launch"
	"github.com/debug-here/debughere/pkg/logflags"
)

// Windows has native just-in-time debugging, so instead of popping a
// terminal and talking the lifeline protocol we point vsjitdebugger at
// ourselves, wait for it to attach, and break.
func hereImpl(debugger string) {
	if alreadyEntered() {
		return
	}
	setupLogging()
	log := logflags.HereLogger()

	if debugger != "" {
		log.WithField("debugger", debugger).Debug("ignoring explicit backend; the system JIT debugger owns the attach on windows")
	}

	if _, err := launch.ResolveJITDebugger(); err != nil {
		bail(err)
		return
	}
	if err := launch.SpawnJITDebugger(os.Getpid()); err != nil {
		bail(err)
		return
	}

	if err := debugdetect.WaitForDebugger(); err != nil {
		bail(err)
		return
	}

	// Just mash F10 until you see your own code.
	launch.DebugBreak()
}
