package core

// PWMValue is a compare register value in timer ticks (0 to PeriodTop).
type PWMValue uint16

// PWMDriver is the abstract PWM timer interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// Configure sets up the timer so that one period is top ticks long,
	// counting at the full CPU clock (prescaler 1), with the output compare
	// channel in inverted mode and the output pin driven by it.
	Configure(top PWMValue)

	// SetCompare loads the compare register. The timer latches the new
	// value at the end of the running period, so updates never glitch.
	SetCompare(value PWMValue)
}
