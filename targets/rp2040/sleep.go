//go:build rp2040

package main

import "device/arm"

// WFISleeper implements core.Sleeper with wait-for-interrupt. The ADC keeps
// converting while the core is stopped.
type WFISleeper struct{}

// Prepare has nothing to do: TinyGo starts with interrupts enabled.
func (WFISleeper) Prepare() {}

// Sleep waits for the next interrupt.
func (WFISleeper) Sleep() {
	arm.Asm("wfi")
	refreshStatus()
}
