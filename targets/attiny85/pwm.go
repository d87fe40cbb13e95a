//go:build attiny85

package main

import (
	"device/avr"

	"fancontrol/core"
)

// Timer0 control bits
const (
	tccr0aWGM00  = 1 << 0
	tccr0aWGM01  = 1 << 1
	tccr0aCOM0B0 = 1 << 4
	tccr0aCOM0B1 = 1 << 5

	tccr0bCS00  = 1 << 0
	tccr0bWGM02 = 1 << 3

	ddrbPB1 = 1 << 1 // OC0B
)

// Timer0PWMDriver implements core.PWMDriver on Timer0 channel B.
//
// Mode 5 is phase-correct PWM with OCR0A as TOP, so the period is set by
// the compare A register instead of the full 8-bit range. OCR0B is double
// buffered and only updates at TOP, which keeps duty changes glitch free.
type Timer0PWMDriver struct{}

// Configure sets up mode 5, no prescaling and inverted output on OC0B.
func (d *Timer0PWMDriver) Configure(top core.PWMValue) {
	avr.DDRB.SetBits(ddrbPB1)

	avr.TCCR0A.Set(tccr0aWGM00 | tccr0aCOM0B1 | tccr0aCOM0B0)
	avr.TCCR0B.Set(tccr0bCS00 | tccr0bWGM02)

	avr.OCR0A.Set(uint8(top))
}

// SetCompare loads OCR0B.
func (d *Timer0PWMDriver) SetCompare(value core.PWMValue) {
	avr.OCR0B.Set(uint8(value))
}
