//go:build attiny85

package main

import "device/avr"

// MCUCR sleep bits
const (
	mcucrSM0 = 1 << 3
	mcucrSM1 = 1 << 4
	mcucrSE  = 1 << 5

	// ADC noise reduction halts the CPU but keeps the ADC and its
	// interrupt running.
	sleepModeADC = mcucrSM0
)

// ADCNoiseSleeper implements core.Sleeper.
type ADCNoiseSleeper struct{}

// Prepare selects ADC noise reduction sleep and enables interrupts.
func (ADCNoiseSleeper) Prepare() {
	avr.MCUCR.ClearBits(mcucrSM1 | mcucrSM0)
	avr.MCUCR.SetBits(sleepModeADC)
	avr.Asm("sei")
}

// Sleep sets the sleep enable bit, sleeps, and clears it again on wake-up.
func (ADCNoiseSleeper) Sleep() {
	avr.MCUCR.SetBits(mcucrSE)
	avr.Asm("sleep")
	avr.MCUCR.ClearBits(mcucrSE)
}
