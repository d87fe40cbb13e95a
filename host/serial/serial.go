// Package serial reads potentiometer readings streamed by a board over a
// serial line, one decimal reading per line.
package serial

import (
	"errors"
	"fmt"
	"io"
)

// Port is an open serial line.
type Port interface {
	io.ReadWriteCloser

	// Flush discards input received but not yet read.
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration for a board streaming ADC
// readings over USB CDC, one per line.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
		// A timed-out read surfaces as io.EOF and would end the stream.
		ReadTimeout: 0,
	}
}

// Validate reports whether the configuration can be opened.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if c.Device == "" {
		return errors.New("serial device path is empty")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("baud rate %d must be positive", c.Baud)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("read timeout %d must not be negative", c.ReadTimeout)
	}
	return nil
}

// Readings is a line-aligned stream of readings from a Port.
type Readings struct {
	port    Port
	aligned bool
	skip    [64]byte
	pending []byte // read past the first newline, not yet returned
}

// NewReadings wraps port. Input already buffered is discarded, and so is
// everything up to the first newline: the board was most likely in the
// middle of printing a reading when the port was opened.
func NewReadings(port Port) (*Readings, error) {
	if err := port.Flush(); err != nil {
		return nil, fmt.Errorf("flush serial input: %w", err)
	}
	return &Readings{port: port}, nil
}

// Read implements io.Reader.
func (r *Readings) Read(b []byte) (int, error) {
	for !r.aligned {
		n, err := r.port.Read(r.skip[:])
		for i := 0; i < n; i++ {
			if r.skip[i] == '\n' {
				r.aligned = true
				r.pending = r.skip[i+1 : n]
				break
			}
		}
		if !r.aligned && err != nil {
			return 0, err
		}
	}
	if len(r.pending) > 0 {
		n := copy(b, r.pending)
		r.pending = r.pending[n:]
		return n, nil
	}
	return r.port.Read(b)
}

// Close closes the underlying port.
func (r *Readings) Close() error {
	return r.port.Close()
}
