// Package sim runs the fan controller core against simulated peripherals,
// one synchronous interrupt per sample.
package sim

import (
	"runtime"
	"sync"

	"fancontrol/core"
)

// ADC is a simulated free-running converter. Each Feed stands for one
// conversion-complete interrupt.
type ADC struct {
	mu      sync.Mutex
	cfg     core.ADCConfig
	handler core.SampleHandler
}

// Configure implements core.ADCDriver.
func (a *ADC) Configure(cfg core.ADCConfig) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
}

// Start implements core.ADCDriver.
func (a *ADC) Start(handler core.SampleHandler) {
	a.mu.Lock()
	a.handler = handler
	a.mu.Unlock()
}

// Config returns the configuration written by the firmware.
func (a *ADC) Config() core.ADCConfig {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Feed completes one conversion with raw as its result and runs the
// interrupt handler to completion. It reports false before Start.
func (a *ADC) Feed(raw core.ADCValue) bool {
	a.mu.Lock()
	h := a.handler
	a.mu.Unlock()

	if h == nil {
		return false
	}
	core.Dispatch(h, raw)
	return true
}

// PWM is a simulated PWM timer in inverted phase-correct mode.
type PWM struct {
	mu      sync.Mutex
	top     core.PWMValue
	compare core.PWMValue
	writes  int
}

// Configure implements core.PWMDriver.
func (p *PWM) Configure(top core.PWMValue) {
	p.mu.Lock()
	p.top = top
	p.mu.Unlock()
}

// SetCompare implements core.PWMDriver.
func (p *PWM) SetCompare(value core.PWMValue) {
	p.mu.Lock()
	p.compare = value
	p.writes++
	p.mu.Unlock()
}

// Top returns the configured period in ticks.
func (p *PWM) Top() core.PWMValue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.top
}

// Compare returns the compare register.
func (p *PWM) Compare() core.PWMValue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.compare
}

// Writes returns how many times the compare register was loaded.
func (p *PWM) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// HighFraction returns the share of each period the output pin is high.
// In inverted mode the pin is high while the counter is above the compare
// value, i.e. for (top - compare) of every top ticks.
func (p *PWM) HighFraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.top == 0 {
		return 0
	}
	if p.compare >= p.top {
		return 0
	}
	return float64(p.top-p.compare) / float64(p.top)
}

// Sleeper parks the simulated CPU until the next interrupt. Cancelling
// its done channel powers the CPU down.
type Sleeper struct {
	wake     chan struct{}
	done     <-chan struct{}
	prepared chan struct{}
	once     sync.Once
	sleeps   int
	mu       sync.Mutex
}

// NewSleeper returns a sleeper that powers down once done is closed.
func NewSleeper(done <-chan struct{}) *Sleeper {
	return &Sleeper{
		wake:     make(chan struct{}, 1),
		done:     done,
		prepared: make(chan struct{}),
	}
}

// Prepare implements core.Sleeper.
func (s *Sleeper) Prepare() {
	s.once.Do(func() { close(s.prepared) })
}

// Prepared is closed once the firmware has finished booting.
func (s *Sleeper) Prepared() <-chan struct{} {
	return s.prepared
}

// Sleep implements core.Sleeper. On power-down the firmware goroutine exits.
func (s *Sleeper) Sleep() {
	s.mu.Lock()
	s.sleeps++
	s.mu.Unlock()

	select {
	case <-s.wake:
	case <-s.done:
		runtime.Goexit()
	}
}

// Interrupt wakes the CPU after an interrupt has been serviced.
func (s *Sleeper) Interrupt() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Sleeps returns how many times the idle loop requested sleep.
func (s *Sleeper) Sleeps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sleeps
}
