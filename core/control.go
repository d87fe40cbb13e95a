package core

// Controller converts each completed ADC sample into a PWM compare value.
// It keeps no state between samples.
type Controller struct {
	pwm *PWMGenerator
}

// NewController returns a controller writing to pwm, which must be initialized.
func NewController(pwm *PWMGenerator) *Controller {
	return &Controller{pwm: pwm}
}

// HandleSample is the conversion-complete interrupt handler.
func (c *Controller) HandleSample(raw ADCValue) {
	top := c.pwm.Top()
	duty := DutyCycle(raw, top)
	compare := top - duty
	c.pwm.SetDutyCycle(compare)

	recordSample(raw, duty, compare)
}

// Dispatch delivers one completed sample to handler with interrupts masked,
// so each handler call finishes before the next sample is serviced.
func Dispatch(handler SampleHandler, raw ADCValue) {
	state := disableInterrupts()
	handler(raw)
	restoreInterrupts(state)
}
