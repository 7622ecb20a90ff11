package cmds

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/debug-here/debughere/pkg/launch"
	"github.com/debug-here/debughere/pkg/lifeline"
)

type execCall struct {
	debugger string
	args     []string
}

func interceptExec(t *testing.T) *[]execCall {
	t.Helper()
	var calls []execCall
	old := execDebugger
	execDebugger = func(debugger string, args []string) error {
		calls = append(calls, execCall{debugger: debugger, args: args})
		return nil
	}
	t.Cleanup(func() { execDebugger = old })
	return &calls
}

func setLifeline(t *testing.T, payload string) {
	t.Helper()
	os.Setenv(lifeline.EnvVar, payload)
	t.Cleanup(func() { os.Unsetenv(lifeline.EnvVar) })
}

func TestRunWithoutLifeline(t *testing.T) {
	calls := interceptExec(t)
	os.Unsetenv(lifeline.EnvVar)

	if err := run(); err == nil {
		t.Fatalf("expected a missing lifeline to be a protocol violation; but run succeeded")
	}
	if len(*calls) != 0 {
		t.Fatalf("expected no exec without a lifeline; but saw <%v>", *calls)
	}
}

func TestRunVersion1DefaultsDebugger(t *testing.T) {
	calls := interceptExec(t)
	setLifeline(t, "1,4242")

	if err := run(); err != nil {
		t.Fatalf("expected a version 1 lifeline to dispatch; but got error <%v>", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected exactly one exec; but saw <%d>", len(*calls))
	}
	if (*calls)[0].debugger != launch.DefaultDebugger() {
		t.Fatalf("expected the platform default debugger; but was <%s>", (*calls)[0].debugger)
	}
	want, err := launch.DebuggerArgs(launch.DefaultDebugger(), 4242)
	if err != nil {
		t.Fatalf("expected the default backend to have a template; but got error <%v>", err)
	}
	if !reflect.DeepEqual((*calls)[0].args, want) {
		t.Fatalf("expected attach args <%v>; but was <%v>", want, (*calls)[0].args)
	}
}

func TestRunVersion2ExplicitDebugger(t *testing.T) {
	calls := interceptExec(t)
	setLifeline(t, "2,4242,lldb")

	if err := run(); err != nil {
		t.Fatalf("expected a version 2 lifeline to dispatch; but got error <%v>", err)
	}
	if len(*calls) != 1 || (*calls)[0].debugger != "lldb" {
		t.Fatalf("expected one exec of lldb; but saw <%v>", *calls)
	}
}

func TestRunConsumesLifeline(t *testing.T) {
	interceptExec(t)
	setLifeline(t, "1,4242")

	if err := run(); err != nil {
		t.Fatalf("expected run to succeed; but got error <%v>", err)
	}
	if _, ok := os.LookupEnv(lifeline.EnvVar); ok {
		t.Fatalf("expected the lifeline to be removed from the wrapper's environment")
	}
}

func TestRunUnknownDebuggerNeverExecs(t *testing.T) {
	calls := interceptExec(t)
	setLifeline(t, "2,555,bogus-debugger")

	err := run()
	var unknown *launch.UnknownDebuggerError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected an unknown debugger error; but was <%v>", err)
	}
	if err.Error() != "unknown debugger: bogus-debugger" {
		t.Fatalf("expected message <unknown debugger: bogus-debugger>; but was <%s>", err.Error())
	}
	if len(*calls) != 0 {
		t.Fatalf("expected bogus-debugger to never be executed; but saw <%v>", *calls)
	}
}

func TestRunRejectsNewerProtocol(t *testing.T) {
	calls := interceptExec(t)
	setLifeline(t, "3,4242,gdb")

	err := run()
	var unsupported *lifeline.UnsupportedVersionError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected an unsupported version error; but was <%v>", err)
	}
	if len(*calls) != 0 {
		t.Fatalf("expected no exec for an unsupported version; but saw <%v>", *calls)
	}
}
