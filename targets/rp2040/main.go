//go:build rp2040

// Fan speed controller for the Raspberry Pi Pico.
//
//	GP28 - trimpot wiper (ADC2)
//	GP15 - 25 kHz PWM output (PWM7 B)
package main

import (
	"machine"

	"fancontrol/core"
)

func main() {
	initStatus()

	core.Run(core.Board{
		PWM:   NewRP2040PWMDriver(machine.PWM7, machine.GP15),
		ADC:   NewRP2040ADCDriver(),
		Sleep: WFISleeper{},
	})
}
