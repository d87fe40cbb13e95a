//go:build attiny85

// Fan speed controller for the ATtiny85.
//
//	Pin 3 - PB4 - trimpot wiper (ADC2)
//	Pin 6 - PB1 - 25 kHz PWM output (OC0B)
package main

import "fancontrol/core"

func main() {
	core.Run(core.Board{
		PWM:   &Timer0PWMDriver{},
		ADC:   &FreeRunningADCDriver{},
		Sleep: ADCNoiseSleeper{},
	})
}
