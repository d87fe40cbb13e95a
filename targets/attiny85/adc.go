//go:build attiny85

package main

import (
	"device/avr"
	"runtime/interrupt"

	"fancontrol/core"
)

// ADC control bits
const (
	admuxREFS1 = 1 << 7
	admuxREFS2 = 1 << 4
	admuxMUX   = 0x0F

	adcsraADPS  = 0x07
	adcsraADIE  = 1 << 3
	adcsraADIF  = 1 << 4
	adcsraADATE = 1 << 5
	adcsraADSC  = 1 << 6
	adcsraADEN  = 1 << 7

	// ADTS bits clear: free-running trigger source.
	adcsrbFreeRunning = 0
)

// sampleHandler receives every conversion. The interrupt handler must be a
// plain function, so the handler lives in a package variable.
var sampleHandler core.SampleHandler

// FreeRunningADCDriver implements core.ADCDriver with the ADC in
// free-running mode and the conversion-complete interrupt.
type FreeRunningADCDriver struct {
	prescale uint8
}

// Configure selects the channel and reference and arms free-running mode.
func (d *FreeRunningADCDriver) Configure(cfg core.ADCConfig) {
	avr.ADMUX.Set(referenceBits(cfg.Reference) | uint8(cfg.Channel)&admuxMUX)
	avr.ADCSRB.Set(adcsrbFreeRunning)
	d.prescale = prescalerBits(cfg.Prescaler)
}

// Start enables the ADC and its interrupt, clears a stale completion flag
// and starts the first conversion.
func (d *FreeRunningADCDriver) Start(handler core.SampleHandler) {
	sampleHandler = handler
	interrupt.New(avr.IRQ_ADC, handleADC)

	avr.ADCSRA.Set(adcsraADEN | adcsraADIE | adcsraADIF | adcsraADSC | adcsraADATE | d.prescale)
}

// handleADC reads ADCL before ADCH: reading ADCL locks the data registers
// until ADCH has been read.
func handleADC(interrupt.Interrupt) {
	low := avr.ADCL.Get()
	high := avr.ADCH.Get()
	core.Dispatch(sampleHandler, core.ADCValue(high)<<8|core.ADCValue(low))
}

func referenceBits(ref core.ADCReference) uint8 {
	switch ref {
	case core.ReferenceInternal1V1:
		return admuxREFS1
	case core.ReferenceInternal2V56:
		return admuxREFS2 | admuxREFS1
	default:
		return 0 // VCC
	}
}

// prescalerBits returns the ADPS field for a division factor.
func prescalerBits(div uint8) uint8 {
	bits := uint8(1)
	for f := uint8(2); f < div && bits < adcsraADPS; f <<= 1 {
		bits++
	}
	return bits
}
