//go:build linux || darwin

package debughere

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/debug-here/debughere/pkg/config"
	"github.com/debug-here/debughere/pkg/debugdetect"
	"github.com/debug-here/debughere/pkg/launch"
	"github.com/debug-here/debughere/pkg/logflags"
)

// newStrategy builds the platform launch strategy. It is a variable so
// tests can run the orchestration against a fake without spawning
// terminals.
var newStrategy = func(conf *config.Config) launch.Strategy {
	return launch.New(conf)
}

func hereImpl(debugger string) {
	if alreadyEntered() {
		return
	}
	setupLogging()
	log := logflags.HereLogger()

	conf := config.LoadConfig()
	if debugger == "" {
		debugger = conf.Debugger
	}
	if debugger == "" {
		debugger = launch.DefaultDebugger()
	}
	log.WithField("debugger", debugger).Debug("attach requested")

	strategy := newStrategy(conf)

	if err := strategy.CheckSanity(); err != nil {
		bail(err)
		return
	}
	if err := strategy.ResolveBinaries(debugger); err != nil {
		bail(err)
		return
	}

	// Arm the release flag before anything capable of clearing it
	// exists. From here on an attach can release us at any moment.
	atomic.StoreInt32(&looping, 1)

	if err := strategy.Launch(debugger, os.Getpid()); err != nil {
		atomic.StoreInt32(&looping, 0)
		bail(err)
		return
	}

	// Wait for the debugger to come to our rescue. There is no timeout
	// and no cancellation: only the debugger clearing the flag (or the
	// process being killed) gets us out of here. Other goroutines keep
	// running the program in the meantime.
	for atomic.LoadInt32(&looping) != 0 {
		runtime.Gosched()
	}

	if attached, err := debugdetect.IsDebuggerAttached(); err == nil {
		log.WithField("attached", attached).Debug("released from the spin loop")
	}
}
