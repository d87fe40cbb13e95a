//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// interruptMask stands in for the global interrupt enable flag, so hosted
// sample delivery is serialized the same way the hardware serializes ISRs.
var interruptMask sync.Mutex

// disableInterrupts masks simulated interrupts. Calls do not nest.
func disableInterrupts() State {
	interruptMask.Lock()
	return 0
}

// restoreInterrupts unmasks simulated interrupts
func restoreInterrupts(state State) {
	interruptMask.Unlock()
}
