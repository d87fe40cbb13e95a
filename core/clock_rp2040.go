//go:build rp2040

package core

// RP2040 system clock. PeriodTop is the duty resolution the controller
// works in; the PWM driver scales it to the slice's own counter, which runs
// at the same 25 kHz as the AVR build.
const (
	CPUFrequency = 125000000
	PeriodTop    = CPUFrequency / (2 * PWMTargetFrequency)

	// ADCClockFrequency is the fixed 48 MHz USB PLL clock feeding the ADC.
	ADCClockFrequency = 48000000
	// ADCClockDivider paces free-running conversions close to the
	// ATtiny's 9.6 kHz sample rate.
	ADCClockDivider = 4999
	SampleRate      = ADCClockFrequency / (ADCClockDivider + 1)

	// The RP2040 ADC is paced by ADCClockDivider, not a prescaler.
	adcPrescaler = 1
)

// TimerCount is the counter width of an RP2040 PWM slice.
type TimerCount = uint16
