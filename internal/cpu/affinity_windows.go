//go:build windows

package cpu

import "syscall"

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// pinToCore pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) error {
	handle, _, _ := getCurrentThread.Call()

	// Bit N = CPU N
	mask := uintptr(1 << normalize(core))

	prevMask, _, err := setThreadAffinityMask.Call(handle, mask)
	if prevMask == 0 {
		return err
	}
	return nil
}
