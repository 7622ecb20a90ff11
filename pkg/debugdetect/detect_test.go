package debugdetect

import (
	"runtime"
	"testing"
)

func TestNotAttached(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
	default:
		t.Skipf("debugger detection not supported on %s", runtime.GOOS)
	}

	// go test does not run its test binaries under a tracer.
	attached, err := IsDebuggerAttached()
	if err != nil {
		t.Fatalf("expected detection to succeed; but got error <%v>", err)
	}
	if attached {
		t.Fatalf("expected no debugger to be attached to the test binary")
	}
}
