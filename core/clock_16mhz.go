//go:build !rp2040 && fcpu16000000

package core

// 16 MHz external crystal.
//
// Timer0 would need a TOP of 320 to reach 25 kHz without prescaling, which
// does not fit its 8-bit counter. The TimerCount check in period.go rejects
// this build; it is kept so that requesting the clock fails loudly instead
// of silently falling back to another PeriodTop.
const (
	CPUFrequency = 16000000
	PeriodTop    = CPUFrequency / (2 * PWMTargetFrequency)
	ADCPrescaler = 128
	SampleRate   = CPUFrequency / ADCPrescaler / adcCyclesPerConversion
)

// TimerCount is the counter width of Timer0.
type TimerCount = uint8
