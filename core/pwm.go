package core

// PWMGenerator owns the fan PWM timer.
//
// The output is inverted: the pin is driven high for (top - compare) ticks of
// every period. A caller holding a duty d in normal terms must pass top - d
// to SetDutyCycle.
type PWMGenerator struct {
	drv         PWMDriver
	top         PWMValue
	initialized bool
}

// NewPWMGenerator wraps a platform PWM driver. The timer is untouched until Init.
func NewPWMGenerator(drv PWMDriver) *PWMGenerator {
	return &PWMGenerator{drv: drv}
}

// Init configures the timer for a period of top ticks and starts at 50% duty.
// It must be called exactly once.
func (g *PWMGenerator) Init(top PWMValue) {
	if g.initialized {
		panic("PWM generator already initialized")
	}
	g.initialized = true
	g.top = top

	g.drv.Configure(top)
	g.drv.SetCompare(top / 2)
}

// SetDutyCycle loads value into the compare register. The value is not
// clamped; callers keep it within [0, Top()].
func (g *PWMGenerator) SetDutyCycle(value PWMValue) {
	g.drv.SetCompare(value)
}

// Top returns the period length in timer ticks.
func (g *PWMGenerator) Top() PWMValue {
	return g.top
}
