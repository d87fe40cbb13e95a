//go:build rp2040

package main

import (
	"device/rp"
	"machine"
	"runtime/interrupt"

	"fancontrol/core"
)

const (
	// adcResultMask keeps the 12-bit conversion result of a FIFO entry.
	adcResultMask = 0xFFF
	// adcResultShift drops the RP2040's 12-bit result to the controller's
	// 10-bit sample.
	adcResultShift = 12 - core.SampleBits
)

// adcPins maps core ADC channels to their GPIOs.
var adcPins = [...]machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3}

// sampleHandler receives every conversion. The interrupt handler must be a
// plain function, so the handler lives in a package variable.
var sampleHandler core.SampleHandler

// RP2040ADCDriver implements core.ADCDriver with the ADC in free-running
// (START_MANY) mode, pushing every result into the FIFO and raising
// ADC_IRQ_FIFO once an entry is available.
type RP2040ADCDriver struct{}

// NewRP2040ADCDriver constructs the driver.
func NewRP2040ADCDriver() *RP2040ADCDriver {
	return &RP2040ADCDriver{}
}

// Configure routes the channel's pin to the ADC, selects it and sets the
// conversion pacing. The RP2040 ADC always measures against ADC_VREF, which
// is tied to the 3.3 V rail on the Pico, so cfg.Reference needs no setup.
func (d *RP2040ADCDriver) Configure(cfg core.ADCConfig) {
	machine.InitADC()

	if int(cfg.Channel) >= len(adcPins) {
		panic("unsupported ADC channel")
	}
	adc := machine.ADC{Pin: adcPins[cfg.Channel]}
	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		panic("could not configure ADC: " + err.Error())
	}

	rp.ADC.CS.ReplaceBits(
		uint32(cfg.Channel)<<rp.ADC_CS_AINSEL_Pos,
		rp.ADC_CS_AINSEL_Msk,
		0,
	)
	rp.ADC.DIV.Set(core.ADCClockDivider << rp.ADC_DIV_INT_Pos)

	// Every conversion goes to the FIFO; interrupt as soon as one is queued.
	rp.ADC.FCS.Set(rp.ADC_FCS_EN | 1<<rp.ADC_FCS_THRESH_Pos)
}

// Start enables the FIFO interrupt and begins free-running conversions.
func (d *RP2040ADCDriver) Start(handler core.SampleHandler) {
	sampleHandler = handler

	intr := interrupt.New(rp.IRQ_ADC_IRQ_FIFO, handleADCFIFO)
	rp.ADC.INTE.Set(rp.ADC_INTE_FIFO)
	intr.Enable()

	rp.ADC.CS.SetBits(rp.ADC_CS_EN | rp.ADC_CS_START_MANY)
}

// handleADCFIFO drains the FIFO in arrival order.
func handleADCFIFO(interrupt.Interrupt) {
	for rp.ADC.FCS.Get()&rp.ADC_FCS_LEVEL_Msk != 0 {
		raw := rp.ADC.FIFO.Get() & adcResultMask
		core.Dispatch(sampleHandler, core.ADCValue(raw>>adcResultShift))
	}
}
