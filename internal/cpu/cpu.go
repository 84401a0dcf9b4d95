// Package cpu binds goroutines to dedicated OS threads and, where the
// platform allows it, to specific CPU cores.
package cpu

import "runtime"

// NoCore disables core pinning in DedicateThread.
const NoCore = -1

// DedicateThread locks the calling goroutine to its OS thread and, when core
// is not NoCore, pins that thread to the core. There is no unlock: the
// goroutine must exit still locked, which makes the runtime terminate the
// thread instead of handing it, pinned, to other goroutines.
func DedicateThread(core int) {
	runtime.LockOSThread()
	if core != NoCore {
		_ = pinToCore(core)
	}
}

// normalize maps any core index into [0, NumCPU).
func normalize(core int) int {
	n := runtime.NumCPU()
	core %= n
	if core < 0 {
		core += n
	}
	return core
}
