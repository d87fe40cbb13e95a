//go:build !rp2040

package core

// The AVR successive approximation ADC needs an input clock between 50 and
// 200 kHz for full 10-bit resolution. A free-running conversion takes 13
// ADC clock cycles.
const (
	adcClockMin            = 50000
	adcClockMax            = 200000
	adcCyclesPerConversion = 13

	adcClock     = CPUFrequency / ADCPrescaler
	adcPrescaler = ADCPrescaler
)

const (
	_ uint = adcClock - adcClockMin
	_ uint = adcClockMax - adcClock
)
