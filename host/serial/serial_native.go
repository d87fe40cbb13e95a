package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// tarmPort adapts a github.com/tarm/serial port to Port.
type tarmPort struct {
	*serial.Port
}

// Open opens the serial device described by cfg.
func Open(cfg *Config) (Port, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return tarmPort{port}, nil
}

// OpenReadings opens cfg's device and returns its line-aligned reading stream.
func OpenReadings(cfg *Config) (*Readings, error) {
	port, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	r, err := NewReadings(port)
	if err != nil {
		port.Close()
		return nil, err
	}
	return r, nil
}
