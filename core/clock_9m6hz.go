//go:build !rp2040 && fcpu9600000

package core

// ATtiny13 on the internal 9.6 MHz RC oscillator.
const (
	CPUFrequency = 9600000
	PeriodTop    = 188 // 9.6 MHz / (2 * 188) = 25.5 kHz
	ADCPrescaler = 64
	SampleRate   = CPUFrequency / ADCPrescaler / adcCyclesPerConversion
)

// TimerCount is the counter width of Timer0.
type TimerCount = uint8
