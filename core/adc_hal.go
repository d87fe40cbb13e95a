package core

// ADCValue is the raw conversion result. Only the low SampleBits are used.
type ADCValue uint16

// ADCChannelID identifies an ADC input multiplexer channel.
type ADCChannelID uint8

// ADCReference selects the conversion reference voltage.
type ADCReference uint8

const (
	// ReferenceVCC uses the supply rail, so a potentiometer across the
	// supply reads the same regardless of the actual supply voltage.
	ReferenceVCC ADCReference = iota
	ReferenceInternal1V1
	ReferenceInternal2V56
)

// ADCConfig is the high-level config the core cares about.
type ADCConfig struct {
	Channel   ADCChannelID
	Reference ADCReference
	// Prescaler divides the CPU clock down to the ADC input clock.
	Prescaler uint8
}

// SampleHandler is called once per completed conversion, in interrupt context.
type SampleHandler func(ADCValue)

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// Configure selects the channel, reference and clock prescaler and
	// puts the converter in free-running mode.
	Configure(cfg ADCConfig)

	// Start enables the converter and its completion interrupt and issues
	// the first conversion. Every completion calls handler with the result
	// until the device is reset.
	Start(handler SampleHandler)
}
