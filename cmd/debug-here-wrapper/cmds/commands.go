// Package cmds implements the debug-here-wrapper command line.
//
// The wrapper runs inside the terminal window the debuggee spawned. It
// decodes the lifeline from the environment, launches the real debugger
// in its own place, and otherwise exists to keep the window open so a
// human can read whatever went wrong. It therefore never exits on
// error: the process lifetime is the display surface.
package cmds

import (
	"fmt"
	"os"
	"time"

	"github.com/debug-here/debughere/pkg/launch"
	"github.com/debug-here/debughere/pkg/lifeline"
	"github.com/debug-here/debughere/pkg/logflags"
	"github.com/debug-here/debughere/pkg/version"
	"github.com/spf13/cobra"
)

var (
	// logFlag is whether to log debug statements.
	logFlag bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
)

const wrapperLongDesc = `debug-here-wrapper launches a debugger attached to the process that
spawned this terminal.

It is not meant to be run by hand: the debughere library spawns it
inside a fresh terminal window and hands it the attach handshake in the
` + lifeline.EnvVar + ` environment variable. On any error it prints the
problem and stays alive so the terminal window keeps the message
visible.`

// New returns an initialized command tree.
func New() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "debug-here-wrapper",
		Short: "Launches a debugger attached to the process that spawned this terminal.",
		Long:  wrapperLongDesc,
		Run:   wrapperCmd,
	}

	rootCommand.PersistentFlags().BoolVarP(&logFlag, "log", "", false, "Enable debug logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (here,launch,wrapper).")

	rootCommand.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("debug-here-wrapper %s\n%s\n", version.DebugHereVersion, version.BuildInfo())
		},
	})

	return rootCommand
}

func wrapperCmd(cmd *cobra.Command, args []string) {
	if err := logflags.Setup(logFlag, logOutput); err != nil {
		hang(err)
	}
	// run does not come back on a successful exec: the debugger has
	// replaced our process image.
	if err := run(); err != nil {
		hang(err)
	}
}

// hang reports err and keeps the process alive forever. Exiting would
// close the terminal window before anyone could read the message; the
// only ways out are the exec in run and external termination.
func hang(err error) {
	fmt.Fprintf(os.Stderr, "debug-here-wrapper: %v\n", err)
	for {
		time.Sleep(1000 * time.Second)
	}
}

// execDebugger is a variable so tests can intercept the final exec.
var execDebugger = platformExecDebugger

func run() error {
	log := logflags.WrapperLogger()

	payload, ok := os.LookupEnv(lifeline.EnvVar)
	if !ok {
		// Only a process we were spawned for ever sets the variable, so
		// this is a protocol invariant violation, not user error.
		return fmt.Errorf("expected %s to be defined", lifeline.EnvVar)
	}
	// Consume the lifeline: the debugger and anything it spawns must
	// not see it.
	os.Unsetenv(lifeline.EnvVar)

	msg, err := lifeline.Decode(payload)
	if err != nil {
		return err
	}
	debugger := msg.DebuggerOrDefault(launch.DefaultDebugger())
	log.WithField("pid", msg.PID).WithField("debugger", debugger).Debug("decoded lifeline")

	attachArgs, err := launch.DebuggerArgs(debugger, msg.PID)
	if err != nil {
		return err
	}

	return execDebugger(debugger, attachArgs)
}
