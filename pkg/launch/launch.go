// Package launch turns a resolved debugger backend into the concrete
// terminal spawn and attach command sequence for the running platform.
//
// Each supported backend has a fixed argument template that attaches to
// a pid, evaluates the release expression, and resumes execution. The
// templates must match the target debugger's command line grammar
// exactly; any change in a debugger's CLI is a protocol change and has
// to go through a lifeline version bump.
package launch

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/debug-here/debughere/pkg/lifeline"
)

// WrapperBin is the name of the helper executable that terminals which
// cannot exec the debugger directly run instead. It must be on PATH.
const WrapperBin = "debug-here-wrapper"

// ReleaseVar is the symbol the attaching debugger overwrites to unstick
// the debuggee. It names the package level spin flag in the debughere
// package.
const ReleaseVar = "github.com/debug-here/debughere.looping"

// Strategy is one platform's way of getting a debugger attached to a
// live process. Exactly one implementation is in effect per build,
// selected by New.
type Strategy interface {
	// CheckSanity verifies platform preconditions for cross-process
	// attach. A failure carries operator guidance, not just a reason.
	CheckSanity() error
	// ResolveBinaries verifies that the debugger, a terminal launch
	// mechanism, and (when needed) the wrapper are all discoverable.
	ResolveBinaries(debugger string) error
	// Launch spawns the terminal chain that attaches debugger to pid.
	// Callers must arm the release flag before calling Launch; nothing
	// in the chain may be able to unstick the debuggee before the
	// debuggee is ready to be unstuck.
	Launch(debugger string, pid int) error
}

// UnknownDebuggerError means the requested backend has no argument
// template. There is no safe fallback: running an arbitrary binary
// with another debugger's flags against a live process is worse than
// stopping.
type UnknownDebuggerError struct {
	Name string
}

func (e *UnknownDebuggerError) Error() string {
	return fmt.Sprintf("unknown debugger: %s", e.Name)
}

// DefaultDebugger returns the backend implied by a version 1 lifeline
// on the running platform.
func DefaultDebugger() string {
	if runtime.GOOS == "darwin" {
		return "lldb"
	}
	return "gdb"
}

// DebuggerArgs returns the argument vector that makes debugger attach
// to pid, evaluate the release expression, and let the debuggee finish
// out of the spin loop.
//
// TODO: a dlv backend needs an --init script file to carry the unstick
// sequence; there is no place for one in a fixed argument vector.
func DebuggerArgs(debugger string, pid int) ([]string, error) {
	switch debugger {
	case "gdb":
		return []string{
			"-pid", strconv.Itoa(pid),
			"-ex", fmt.Sprintf("set variable '%s' = 0", ReleaseVar),
			"-ex", "finish",
		}, nil
	case "lldb":
		return []string{
			"-p", strconv.Itoa(pid),
			"-o", fmt.Sprintf("expression '%s' = 0", ReleaseVar),
			"-o", "finish",
		}, nil
	}
	return nil, &UnknownDebuggerError{Name: debugger}
}

// lifelinePayload picks the lowest protocol version that can carry the
// request, so older wrappers keep working whenever the requested
// debugger is the platform default.
func lifelinePayload(debugger string, pid int) string {
	if debugger == DefaultDebugger() {
		return lifeline.Encode(1, pid, "")
	}
	return lifeline.Encode(2, pid, debugger)
}

// JoinScriptArgs renders an argument vector as a single command line
// for launch mechanisms that route through a shell-scripting layer and
// therefore cannot pass a real argv. Tokens containing spaces or
// quotes are single-quoted, with embedded single quotes escaped the
// shell way.
func JoinScriptArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quoteScriptToken(arg)
	}
	return strings.Join(quoted, " ")
}

func quoteScriptToken(arg string) string {
	if !strings.ContainsAny(arg, " '\"") {
		return arg
	}
	return "'" + strings.Replace(arg, "'", `'\''`, -1) + "'"
}
