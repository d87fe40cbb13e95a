package core

// PWMTargetFrequency is the 4-wire fan control frequency.
const PWMTargetFrequency = 25000

const (
	maxFrequencyError = 1000
	minPeriodTop      = 100

	// pwmFrequency is the emitted frequency in phase-correct mode, where the
	// counter runs up to PeriodTop and back down every period.
	pwmFrequency = CPUFrequency / (2 * PeriodTop)
)

// Build-time configuration checks. Each one is a constant conversion that
// overflows, and so stops compilation, when the selected clock rate cannot
// produce the fan PWM signal.
const (
	_ TimerCount = PeriodTop
	_ uint       = PeriodTop - minPeriodTop
	_ uint       = maxFrequencyError - (pwmFrequency - PWMTargetFrequency)
	_ uint       = maxFrequencyError - (PWMTargetFrequency - pwmFrequency)
)

// PWMFrequency returns the frequency of the PWM output in Hz.
func PWMFrequency() uint32 {
	return pwmFrequency
}
