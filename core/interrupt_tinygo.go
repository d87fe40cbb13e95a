//go:build tinygo

package core

import "runtime/interrupt"

// State is the saved interrupt enable flag (SREG I-bit on AVR, PRIMASK on
// Cortex-M).
type State = interrupt.State

// disableInterrupts clears the global interrupt enable and returns the
// previous setting. Inside an AVR ISR the flag is already clear, so the
// matching restore leaves it clear until RETI.
func disableInterrupts() State {
	return interrupt.Disable()
}

// restoreInterrupts puts back the flag saved by disableInterrupts.
func restoreInterrupts(state State) {
	interrupt.Restore(state)
}
