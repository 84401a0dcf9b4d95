//go:build darwin

package cpu

// pinToCore is a no-op: macOS offers affinity hints only, not pinning.
func pinToCore(int) error {
	return nil
}
