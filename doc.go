// Package debughere lets a running program ask for a debugger to be
// attached to it, from an arbitrary point in its own execution, without
// having been started under a debugger.
//
// Drop a call somewhere in your code:
//
//	func factorial(n int) int {
//		res := 1
//		debughere.Here()
//		for i := 1; i <= n; i++ {
//			res *= i
//		}
//		return res
//	}
//
// When execution reaches the call a terminal window opens running gdb
// (linux) or lldb (macos) already attached to the process, and the
// calling goroutine blocks until the debugger releases it. On windows
// the native just-in-time debugger is used instead. Only the first call
// per process does anything; every later call is a no-op, on the theory
// that if you are debugging something in a loop you do not want a new
// debugger window every time around.
//
// The release mechanism is deliberately outside the Go memory model:
// the blocked goroutine polls the package level looping flag and the
// attached debugger overwrites that flag in raw memory. Nothing else in
// the program may write it.
package debughere
