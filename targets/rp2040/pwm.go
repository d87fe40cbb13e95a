//go:build rp2040

package main

import (
	"machine"

	"fancontrol/core"
)

// pwmPeripheral is an interface for PWM hardware peripherals
// This abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	SetInverting(channel uint8, inverting bool)
}

// RP2040PWMDriver implements core.PWMDriver on one channel of a PWM slice.
// The slice's A and B compare registers are double buffered and latch at
// the wrap point, so duty updates never glitch.
type RP2040PWMDriver struct {
	pwm     pwmPeripheral
	pin     machine.Pin
	channel uint8
	top     core.PWMValue
}

// NewRP2040PWMDriver creates a driver for pin on the slice pwm.
func NewRP2040PWMDriver(pwm pwmPeripheral, pin machine.Pin) *RP2040PWMDriver {
	return &RP2040PWMDriver{pwm: pwm, pin: pin}
}

// Configure sets the slice to the fan frequency and inverts the channel.
// A failure here is a board wiring error; there is nothing to fall back to.
func (d *RP2040PWMDriver) Configure(top core.PWMValue) {
	err := d.pwm.Configure(machine.PWMConfig{
		Period: uint64(1e9) / core.PWMTargetFrequency,
	})
	if err != nil {
		panic("could not configure PWM: " + err.Error())
	}

	d.channel, err = d.pwm.Channel(d.pin)
	if err != nil {
		panic("could not get PWM channel for pin: " + err.Error())
	}

	d.pwm.SetInverting(d.channel, true)
	d.top = top
}

// SetCompare scales value from [0, top] to the slice's counter range.
func (d *RP2040PWMDriver) SetCompare(value core.PWMValue) {
	duty := uint32(value) * d.pwm.Top() / uint32(d.top)
	d.pwm.Set(d.channel, duty)
}
