//go:build !rp2040 && !fcpu9600000 && !fcpu16000000

package core

// ATtiny85 on the internal 8 MHz RC oscillator.
const (
	CPUFrequency = 8000000
	PeriodTop    = 160 // 8 MHz / (2 * 160) = 25 kHz
	ADCPrescaler = 64
	SampleRate   = CPUFrequency / ADCPrescaler / adcCyclesPerConversion
)

// TimerCount is the counter width of Timer0.
type TimerCount = uint8
