package core

// Sleeper parks the CPU between interrupts.
type Sleeper interface {
	// Prepare enables interrupts and selects the deepest sleep mode that
	// keeps the free-running ADC and its interrupt alive.
	Prepare()

	// Sleep arms the sleep request and enters sleep. It returns after an
	// interrupt has been serviced.
	Sleep()
}

// Board is the set of platform drivers the fan controller runs on.
type Board struct {
	PWM   PWMDriver
	ADC   ADCDriver
	Sleep Sleeper
}

// Start initializes the PWM output at 50% and arms the ADC with the
// controller as its completion handler. Interrupts are not enabled yet.
func Start(b Board) *Controller {
	pwm := NewPWMGenerator(b.PWM)
	pwm.Init(PeriodTop)

	ctrl := NewController(pwm)
	NewSampler(b.ADC).Init(DefaultADCConfig(), ctrl.HandleSample)

	return ctrl
}

// Run starts the controller and parks the CPU forever. Only a reset leaves it.
func Run(b Board) {
	Start(b)
	b.Sleep.Prepare()
	Idle(b.Sleep)
}

// Idle re-enters sleep after every wake-up. Sleep requests are single-shot
// on some parts, so the request is re-armed each iteration.
func Idle(s Sleeper) {
	for {
		s.Sleep()
	}
}
