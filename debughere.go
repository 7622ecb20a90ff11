package debughere

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/debug-here/debughere/pkg/logflags"
)

// looping is the release flag. The attaching debugger overwrites it
// with 0 to unstick the blocked goroutine; no in-process code ever
// clears it on a successful attach. It must be armed strictly before
// the terminal is spawned so the debugger can never race ahead of our
// readiness to be released. The atomic load in the poll loop keeps the
// read from being hoisted out under optimization; cross-process
// visibility comes from the debugger stopping the process and writing
// raw memory, which no in-process memory model can speak for.
var looping int32

// entered is the one-shot latch. Once set it is never reset for the
// lifetime of the process.
var entered int32

// alreadyEntered latches the guard and reports whether some earlier
// call had already done so. Exactly one caller ever sees false, no
// matter how many goroutines race here.
func alreadyEntered() bool {
	return !atomic.CompareAndSwapInt32(&entered, 0, 1)
}

var setupLoggingOnce sync.Once

// setupLogging wires the component loggers from the environment, since
// a library has no command line to take --log flags from.
func setupLogging() {
	setupLoggingOnce.Do(func() {
		logstr := os.Getenv("DEBUG_HERE_LOG_OUTPUT")
		logflags.Setup(os.Getenv("DEBUG_HERE_LOG") != "" || logstr != "", logstr)
	})
}

// bail reports why the attach attempt was abandoned. The host program
// keeps running normally afterwards; no failure on the debuggee side is
// ever fatal.
func bail(err error) {
	fmt.Fprintf(os.Stderr, "debug-here: %v\n", err)
}

// Here requests that a debugger attach to this process and blocks the
// calling goroutine until the debugger releases it.
//
// Everything that can go wrong before the debugger is launched turns
// into a diagnostic on stderr and a normal return. Only the first call
// per process lifetime does anything; the rest return immediately.
func Here() {
	hereImpl("")
}

// HereWithDebugger is Here with an explicit backend ("gdb" or "lldb")
// instead of the platform default. On windows the backend is ignored;
// the system just-in-time debugger owns the attach there.
func HereWithDebugger(debugger string) {
	hereImpl(debugger)
}
