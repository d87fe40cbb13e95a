package core

// Potentiometer wiper on PB4 (ADC2).
const DefaultADCChannel ADCChannelID = 2

// DefaultADCConfig returns the sampler setup used by the fan controller:
// the potentiometer channel, supply-rail reference and the build's prescaler.
func DefaultADCConfig() ADCConfig {
	return ADCConfig{
		Channel:   DefaultADCChannel,
		Reference: ReferenceVCC,
		Prescaler: adcPrescaler,
	}
}

// Sampler owns the free-running ADC.
type Sampler struct {
	drv         ADCDriver
	cfg         ADCConfig
	initialized bool
}

// NewSampler wraps a platform ADC driver.
func NewSampler(drv ADCDriver) *Sampler {
	return &Sampler{drv: drv}
}

// Init configures the converter and arms it. From then on handler runs
// once per completed conversion. It must be called exactly once.
func (s *Sampler) Init(cfg ADCConfig, handler SampleHandler) {
	if s.initialized {
		panic("ADC sampler already initialized")
	}
	s.initialized = true
	s.cfg = cfg

	s.drv.Configure(cfg)
	s.drv.Start(handler)
}

// Config returns the configuration passed to Init.
func (s *Sampler) Config() ADCConfig {
	return s.cfg
}
