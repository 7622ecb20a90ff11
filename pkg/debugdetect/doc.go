// Package debugdetect reports whether the current process is being
// traced by a ptrace-based debugger (gdb, lldb, Delve, ...) or, on
// windows, by anything that sets the PEB BeingDebugged flag.
//
// debug-here uses it in two places: the windows just-in-time path
// blocks on WaitForDebugger after asking vsjitdebugger to attach, and
// the unix orchestrator uses IsDebuggerAttached to log a confirmation
// once the spin flag has been released.
//
// Supported platforms: linux, darwin, windows.
package debugdetect
